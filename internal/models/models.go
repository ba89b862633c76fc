package models

import (
	"time"

	"github.com/atelierfield/matspec/internal/pipeline"
	"github.com/atelierfield/matspec/internal/prompts"
)

// Run represents one web-initiated generation run and its outcome.
type Run struct {
	ID        string              `json:"id"`
	Provider  string              `json:"provider,omitempty"`
	Model     string              `json:"model,omitempty"`
	Options   prompts.Options     `json:"options"`
	Images    []string            `json:"images"`
	Result    *pipeline.RunResult `json:"result,omitempty"`
	Error     string              `json:"error,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}
