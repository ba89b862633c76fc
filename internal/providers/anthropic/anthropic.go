// Package anthropic implements the TextGenerator capability on the
// Anthropic Messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/atelierfield/matspec/internal/providers"
)

const (
	messagesURL = "https://api.anthropic.com/v1/messages"
	apiVersion  = "2023-06-01"
)

// Client is a provider for the Anthropic Messages API.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// New returns a new Anthropic client. The API key is read once at
// construction and its absence is a construction failure, before any
// image is touched.
func New() (*Client, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not found in environment variables. Please create a .env file with your API key")
	}
	return &Client{
		apiKey:     apiKey,
		endpoint:   messagesURL,
		httpClient: &http.Client{},
	}, nil
}

// GenerateText sends one message to the Messages API and returns the text
// of the first content block.
func (c *Client) GenerateText(ctx context.Context, req providers.Request) (string, error) {
	var content any
	if req.Image != nil {
		content = []map[string]any{
			{
				"type": "image",
				"source": map[string]string{
					"type":       "base64",
					"media_type": req.Image.MediaType,
					"data":       req.Image.Data,
				},
			},
			{
				"type": "text",
				"text": req.Prompt,
			},
		}
	} else {
		content = req.Prompt
	}

	requestBody, err := json.Marshal(map[string]any{
		"model":       req.Model,
		"max_tokens":  req.MaxTokens,
		"temperature": req.Temperature,
		"messages": []map[string]any{
			{
				"role":    "user",
				"content": content,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &providers.HTTPError{StatusCode: resp.StatusCode, Body: body}
	}

	var response struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(response.Content) == 0 || strings.TrimSpace(response.Content[0].Text) == "" {
		return "", providers.ErrEmptyResponse
	}

	return response.Content[0].Text, nil
}
