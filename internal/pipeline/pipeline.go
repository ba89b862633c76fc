// Package pipeline drives a batch of visualization images through material
// analysis and specification generation, aggregating the results into one
// combined markdown document.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atelierfield/matspec/internal/imaging"
	"github.com/atelierfield/matspec/internal/prompts"
	"github.com/atelierfield/matspec/internal/specgen"
	"github.com/atelierfield/matspec/internal/vision"
)

// Options toggles the optional specification sections for the whole batch.
type Options = prompts.Options

// briefExcerptLimit bounds the brief context sent with each vision call.
// The vision call only needs enough context to disambiguate materials.
const briefExcerptLimit = 200

// placeholderBrief substitutes for an absent project brief.
const placeholderBrief = "No project brief provided."

// Whole-batch failures: every image failed in the corresponding phase.
var (
	ErrNoValidAnalysis      = errors.New("no images could be analyzed successfully")
	ErrNoValidSpecification = errors.New("no specifications could be generated")
)

// AnalysisResult is the phase-1 outcome for one image. Failures are
// recorded as data, not dropped, so the result set always has the same
// key set as the input image set.
type AnalysisResult struct {
	Image  string `json:"image"`
	Text   string `json:"text"`
	Failed bool   `json:"failed"`
}

// Specification is one generated per-image document body.
type Specification struct {
	Image string `json:"image"`
	Body  string `json:"body"`
}

// RunResult is everything one batch run produced, handed to the
// presentation layer as an explicit value.
type RunResult struct {
	Analyses       []AnalysisResult `json:"analyses"`
	Specifications []Specification  `json:"specifications"`
	Warnings       []string         `json:"warnings"`
	Document       string           `json:"document"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

// Runner orchestrates the two pipeline phases.
type Runner struct {
	analyzer  *vision.Analyzer
	generator *specgen.Generator

	// Now stamps the combined document header. Overridable in tests.
	Now func() time.Time
}

// NewRunner returns a Runner over the given clients.
func NewRunner(analyzer *vision.Analyzer, generator *specgen.Generator) *Runner {
	return &Runner{
		analyzer:  analyzer,
		generator: generator,
		Now:       time.Now,
	}
}

// TruncateBrief cuts a brief to the excerpt length used for vision
// prompts, appending an ellipsis marker when truncated.
func TruncateBrief(brief string) string {
	runes := []rune(brief)
	if len(runes) <= briefExcerptLimit {
		return brief
	}
	return string(runes[:briefExcerptLimit]) + "..."
}

// Run executes both phases over images in input order. One image's
// failure never aborts the batch; only all-failed phases do. On a
// whole-batch failure the returned RunResult still carries the per-image
// outcomes collected so far.
func (r *Runner) Run(ctx context.Context, images []imaging.SourceImage, brief string, opts Options) (*RunResult, error) {
	if strings.TrimSpace(brief) == "" {
		brief = placeholderBrief
	}
	visionPrompt := prompts.BuildVisionPrompt(TruncateBrief(brief))

	result := &RunResult{GeneratedAt: r.Now()}

	// Phase 1: analyze every image, recording failures in place.
	succeeded := 0
	for _, img := range images {
		text, err := r.analyzeImage(ctx, img, visionPrompt)
		if err != nil {
			slog.Warn("Image analysis failed", "image", img.Name, "error", err)
			result.Analyses = append(result.Analyses, AnalysisResult{
				Image:  img.Name,
				Text:   fmt.Sprintf("ERROR: Could not analyze %s: %s", img.Name, err),
				Failed: true,
			})
			continue
		}
		result.Analyses = append(result.Analyses, AnalysisResult{Image: img.Name, Text: text})
		succeeded++
	}

	if succeeded == 0 {
		return result, ErrNoValidAnalysis
	}
	slog.Info("Analyzed images", "total", len(images), "succeeded", succeeded)

	// Phase 2: generate a specification per surviving analysis, dropping
	// failures with a recorded warning.
	for _, analysis := range result.Analyses {
		if analysis.Failed {
			continue
		}
		prompt := prompts.BuildSpecPrompt(brief, analysis.Text, opts, analysis.Image)
		body, err := r.generator.Generate(ctx, prompt)
		if err != nil {
			warning := fmt.Sprintf("Could not generate spec for %s: %s", analysis.Image, err)
			slog.Warn("Specification generation failed", "image", analysis.Image, "error", err)
			result.Warnings = append(result.Warnings, warning)
			continue
		}
		result.Specifications = append(result.Specifications, Specification{Image: analysis.Image, Body: body})
	}

	if len(result.Specifications) == 0 {
		return result, ErrNoValidSpecification
	}
	slog.Info("Generated specifications", "count", len(result.Specifications))

	result.Document = BuildDocument(result.Specifications, result.GeneratedAt)
	return result, nil
}

func (r *Runner) analyzeImage(ctx context.Context, img imaging.SourceImage, prompt string) (string, error) {
	encoded, err := imaging.Encode(img.Name, img.Data)
	if err != nil {
		return "", err
	}
	return r.analyzer.Analyze(ctx, encoded, prompt)
}

// SummarizeFailures collapses phase-1 failures into display lines: one
// summary line when every failure shares a cause, otherwise a bounded
// per-image list.
func SummarizeFailures(analyses []AnalysisResult) []string {
	const previewLimit = 5

	var failed []AnalysisResult
	unique := map[string]bool{}
	for _, a := range analyses {
		if !a.Failed {
			continue
		}
		failed = append(failed, a)
		unique[strings.TrimPrefix(a.Text, "ERROR: ")] = true
	}
	if len(failed) == 0 {
		return nil
	}

	if len(unique) == 1 {
		msg := strings.TrimPrefix(failed[0].Text, "ERROR: ")
		return []string{
			fmt.Sprintf("Failed to analyze %d image(s)", len(failed)),
			"  " + msg,
		}
	}

	lines := []string{fmt.Sprintf("Failed to analyze %d image(s):", len(failed))}
	for i, a := range failed {
		if i == previewLimit {
			lines = append(lines, fmt.Sprintf("  ... and %d more", len(failed)-previewLimit))
			break
		}
		lines = append(lines, fmt.Sprintf("  - %s", strings.TrimPrefix(a.Text, "ERROR: ")))
	}
	return lines
}
