package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{
			name:     "429 is rate limited",
			err:      &HTTPError{StatusCode: 429, Body: []byte(`{}`)},
			expected: KindRateLimited,
		},
		{
			name:     "401 is unauthorized",
			err:      &HTTPError{StatusCode: 401, Body: []byte(`{}`)},
			expected: KindUnauthorized,
		},
		{
			name:     "403 is unauthorized",
			err:      &HTTPError{StatusCode: 403, Body: []byte(`{}`)},
			expected: KindUnauthorized,
		},
		{
			name:     "structured rate limit type",
			err:      &HTTPError{StatusCode: 400, Body: []byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`)},
			expected: KindRateLimited,
		},
		{
			name:     "structured authentication type",
			err:      &HTTPError{StatusCode: 400, Body: []byte(`{"error":{"type":"authentication_error","message":"bad key"}}`)},
			expected: KindUnauthorized,
		},
		{
			name:     "credit balance message",
			err:      &HTTPError{StatusCode: 400, Body: []byte(`{"error":{"type":"invalid_request_error","message":"Your credit balance is too low to access the API"}}`)},
			expected: KindInsufficientCredit,
		},
		{
			name:     "unclassified body is unknown",
			err:      &HTTPError{StatusCode: 500, Body: []byte(`{"error":{"type":"overloaded_error","message":"Overloaded"}}`)},
			expected: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := Classify(tt.err)
			if remote.Kind != tt.expected {
				t.Errorf("Expected kind %d, got %d", tt.expected, remote.Kind)
			}
		})
	}
}

func TestClassifyText(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"rate limit text", errors.New("request failed: rate_limit exceeded"), KindRateLimited},
		{"429 in text", errors.New("got 429 back"), KindRateLimited},
		{"authentication text", errors.New("authentication failure"), KindUnauthorized},
		{"credit balance text", errors.New("credit balance is too low"), KindInsufficientCredit},
		{"anything else", errors.New("connection reset by peer"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := Classify(tt.err)
			if remote.Kind != tt.expected {
				t.Errorf("Expected kind %d, got %d", tt.expected, remote.Kind)
			}
		})
	}
}

func TestClassifyRateLimitBeatsAuth(t *testing.T) {
	// Both indicators present: rate limit wins per classification priority
	remote := Classify(errors.New("rate limit reached during authentication"))
	if remote.Kind != KindRateLimited {
		t.Errorf("Expected rate limit to take priority, got kind %d", remote.Kind)
	}
}

func TestClassifyExtractsEmbeddedMessage(t *testing.T) {
	err := fmt.Errorf("request failed: %s", `{"error":{"type":"api_error","message":"internal server error"}}`)
	remote := Classify(err)

	if remote.Kind != KindUnknown {
		t.Fatalf("Expected unknown kind, got %d", remote.Kind)
	}
	if remote.Message != "internal server error" {
		t.Errorf("Expected extracted message, got %q", remote.Message)
	}
}

func TestClassifyUnknownFallsBackToRawText(t *testing.T) {
	remote := Classify(errors.New("something odd happened"))
	if remote.Message != "something odd happened" {
		t.Errorf("Expected raw error text, got %q", remote.Message)
	}
}

func TestClassifyPassesThroughRemoteError(t *testing.T) {
	remote := Classify(fmt.Errorf("wrapped: %w", ErrEmptyResponse))
	if remote.Kind != KindEmptyResponse {
		t.Errorf("Expected empty response kind, got %d", remote.Kind)
	}
}

func TestRemoteErrorMessages(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindRateLimited, "API rate limit reached - please wait a moment and try again"},
		{KindUnauthorized, "API authentication failed - please check your API key"},
		{KindInsufficientCredit, "API credit balance too low - please add credits to your account"},
		{KindEmptyResponse, "empty response from API"},
	}

	for _, tt := range tests {
		err := &RemoteError{Kind: tt.kind}
		if err.Error() != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, err.Error())
		}
	}
}
