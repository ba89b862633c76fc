// Package config resolves runtime settings for the generation pipeline.
// Precedence: command-line flags (applied by the caller), then environment
// variables, then the optional YAML config file, then built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Per-call token ceilings. The vision call returns a short material list;
// the specification call returns a full document.
const (
	VisionMaxTokens = 1024
	SpecMaxTokens   = 4096
)

// Config holds provider selection and generation parameters.
type Config struct {
	Provider    string  `yaml:"provider"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	OutputDir   string  `yaml:"output_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Provider:    "anthropic",
		Temperature: 0.2,
		OutputDir:   "output",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and environment overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if provider := os.Getenv("MATSPEC_PROVIDER"); provider != "" {
		cfg.Provider = provider
	}
	if model := os.Getenv("MATSPEC_MODEL"); model != "" {
		cfg.Model = model
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Provider)
	}

	return cfg, nil
}

// DefaultModel returns the default model for a provider.
func DefaultModel(provider string) string {
	switch provider {
	case "anthropic":
		return "claude-haiku-4-5-20251001"
	case "gemini":
		return "gemini-2.0-flash"
	case "ollama":
		model := os.Getenv("OLLAMA_MODEL")
		if model == "" {
			return "mistral-small3.2:24b"
		}
		return model
	default:
		return ""
	}
}
