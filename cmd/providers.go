package cmd

import (
	"fmt"

	"github.com/atelierfield/matspec/internal/providers"
	"github.com/atelierfield/matspec/internal/providers/anthropic"
	"github.com/atelierfield/matspec/internal/providers/gemini"
	"github.com/atelierfield/matspec/internal/providers/ollama"
)

// newGenerator constructs the provider client. Credentials are validated
// here, before any image is read.
func newGenerator(provider string) (providers.TextGenerator, error) {
	switch provider {
	case "anthropic":
		return anthropic.New()
	case "gemini":
		return gemini.New()
	case "ollama":
		return ollama.New()
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
