// Package vision wraps the image-analysis call to the generation model.
package vision

import (
	"context"
	"log/slog"
	"strings"

	"github.com/atelierfield/matspec/internal/config"
	"github.com/atelierfield/matspec/internal/imaging"
	"github.com/atelierfield/matspec/internal/providers"
)

// Analyzer identifies materials in encoded images using a vision-capable
// generation model.
type Analyzer struct {
	generator   providers.TextGenerator
	model       string
	temperature float64
}

// New returns an Analyzer backed by the given generator.
func New(generator providers.TextGenerator, model string, temperature float64) *Analyzer {
	return &Analyzer{
		generator:   generator,
		model:       model,
		temperature: temperature,
	}
}

// Analyze sends one request carrying the image and prompt together and
// returns the model's material analysis. Failures are classified into the
// shared remote-error taxonomy; no retries are performed here.
func (a *Analyzer) Analyze(ctx context.Context, img *imaging.Encoded, prompt string) (string, error) {
	text, err := a.generator.GenerateText(ctx, providers.Request{
		Model:       a.model,
		Temperature: a.temperature,
		MaxTokens:   config.VisionMaxTokens,
		Prompt:      prompt,
		Image: &providers.Image{
			Data:      img.Data,
			MediaType: img.MediaType,
		},
	})
	if err != nil {
		return "", providers.Classify(err)
	}

	if strings.TrimSpace(text) == "" {
		return "", providers.ErrEmptyResponse
	}

	slog.Debug("Analyzed image", "image", img.Name, "length", len(text))
	return text, nil
}
