// Package gemini implements the TextGenerator capability on Google Gemini.
package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/atelierfield/matspec/internal/providers"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is a provider for Google Gemini.
type Client struct {
	apiKey string
}

// New returns a new Gemini client. Missing credentials fail construction.
func New() (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	return &Client{apiKey: apiKey}, nil
}

// GenerateText generates text from the given prompt, with the inline image
// attached to the same content when present.
func (c *Client) GenerateText(ctx context.Context, req providers.Request) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(req.Model)
	model.SetTemperature(float32(req.Temperature))
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	parts := []genai.Part{}
	if req.Image != nil {
		raw, err := base64.StdEncoding.DecodeString(req.Image.Data)
		if err != nil {
			return "", fmt.Errorf("failed to decode image data: %w", err)
		}
		format := strings.TrimPrefix(req.Image.MediaType, "image/")
		parts = append(parts, genai.ImageData(format, raw))
	}
	parts = append(parts, genai.Text(req.Prompt))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", providers.ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", providers.ErrEmptyResponse
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		if strings.TrimSpace(string(txt)) == "" {
			return "", providers.ErrEmptyResponse
		}
		return string(txt), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}
