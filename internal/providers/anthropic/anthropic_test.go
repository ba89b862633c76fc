package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atelierfield/matspec/internal/providers"
)

func newTestClient(endpoint string) *Client {
	return &Client{
		apiKey:     "test-key",
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
}

func TestGenerateTextRequestBody(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.Write([]byte(`{"content":[{"type":"text","text":"ok"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	req := providers.Request{
		Model:       "claude-haiku-4-5-20251001",
		Temperature: 0.2,
		MaxTokens:   1024,
		Prompt:      "describe the facade",
	}

	text, err := client.GenerateText(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if text != "ok" {
		t.Errorf("Expected response text 'ok', got %q", text)
	}

	if captured["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("Expected model in request body, got %v", captured["model"])
	}
	if captured["temperature"] != 0.2 {
		t.Errorf("Expected temperature 0.2 in request body, got %v", captured["temperature"])
	}
	if captured["max_tokens"] != float64(1024) {
		t.Errorf("Expected max_tokens 1024 in request body, got %v", captured["max_tokens"])
	}
}

func TestGenerateTextImageContent(t *testing.T) {
	var captured struct {
		Messages []struct {
			Content []map[string]any `json:"content"`
		} `json:"messages"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.Write([]byte(`{"content":[{"type":"text","text":"ok"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	req := providers.Request{
		Model:     "claude-haiku-4-5-20251001",
		MaxTokens: 1024,
		Prompt:    "describe the facade",
		Image: &providers.Image{
			Data:      "aGVsbG8=",
			MediaType: "image/jpeg",
		},
	}

	if _, err := client.GenerateText(context.Background(), req); err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}

	if len(captured.Messages) != 1 || len(captured.Messages[0].Content) != 2 {
		t.Fatalf("Expected one message with image and text blocks, got %+v", captured.Messages)
	}
	if captured.Messages[0].Content[0]["type"] != "image" {
		t.Errorf("Expected first content block to be the image, got %v", captured.Messages[0].Content[0]["type"])
	}
	if captured.Messages[0].Content[1]["type"] != "text" {
		t.Errorf("Expected second content block to be the prompt, got %v", captured.Messages[0].Content[1]["type"])
	}
}

func TestGenerateTextHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GenerateText(context.Background(), providers.Request{
		Model:     "claude-haiku-4-5-20251001",
		MaxTokens: 1024,
		Prompt:    "describe the facade",
	})
	if err == nil {
		t.Fatal("Expected error for 429 response")
	}

	remote := providers.Classify(err)
	if remote.Kind != providers.KindRateLimited {
		t.Errorf("Expected rate limit classification, got %v", remote.Kind)
	}
}
