// Package providers defines the text-generation capability the pipeline
// depends on, plus the shared classification of remote failures.
package providers

import (
	"context"
)

// Image is an inline image attached to a generation request.
type Image struct {
	Data      string // base64 encoded bytes
	MediaType string
}

// Request represents one text-generation call. Image is optional; when set
// the image and prompt travel together in a single message.
type Request struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Prompt      string
	Image       *Image
}

// TextGenerator defines the interface for a hosted generation model.
// Implementations send exactly one request per call, no retries, no
// streaming; retry policy belongs to the caller.
type TextGenerator interface {
	GenerateText(ctx context.Context, req Request) (string, error)
}
