// Package specgen wraps the document-generation call to the model.
package specgen

import (
	"context"
	"log/slog"
	"strings"

	"github.com/atelierfield/matspec/internal/config"
	"github.com/atelierfield/matspec/internal/providers"
)

// Generator turns a specification prompt into a markdown document. It uses
// the same remote failure taxonomy as the vision analyzer so user-facing
// messages stay consistent across both call sites.
type Generator struct {
	generator   providers.TextGenerator
	model       string
	temperature float64
}

// New returns a Generator backed by the given generator.
func New(generator providers.TextGenerator, model string, temperature float64) *Generator {
	return &Generator{
		generator:   generator,
		model:       model,
		temperature: temperature,
	}
}

// Generate sends one text-only request and returns the markdown document.
// No retries; a failure is terminal for this prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := g.generator.GenerateText(ctx, providers.Request{
		Model:       g.model,
		Temperature: g.temperature,
		MaxTokens:   config.SpecMaxTokens,
		Prompt:      prompt,
	})
	if err != nil {
		return "", providers.Classify(err)
	}

	if strings.TrimSpace(text) == "" {
		return "", providers.ErrEmptyResponse
	}

	slog.Debug("Generated specification", "length", len(text))
	return text, nil
}
