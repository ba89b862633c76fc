package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind partitions remote failures into the categories that get
// distinct user-facing messages. Classification priority: rate limit,
// then auth, then credit balance, then unknown.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindRateLimited
	KindUnauthorized
	KindInsufficientCredit
	KindEmptyResponse
)

// RemoteError is a classified failure from a generation call.
type RemoteError struct {
	Kind    ErrorKind
	Message string
}

func (e *RemoteError) Error() string {
	switch e.Kind {
	case KindRateLimited:
		return "API rate limit reached - please wait a moment and try again"
	case KindUnauthorized:
		return "API authentication failed - please check your API key"
	case KindInsufficientCredit:
		return "API credit balance too low - please add credits to your account"
	case KindEmptyResponse:
		return "empty response from API"
	default:
		return e.Message
	}
}

// ErrEmptyResponse reports an absent or empty response body. Distinct from
// empty-string success.
var ErrEmptyResponse = &RemoteError{Kind: KindEmptyResponse}

// HTTPError carries the status code and raw body of a non-2xx response so
// classification can prefer structured fields over message text.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("received non-200 status code: %d - %s", e.StatusCode, string(e.Body))
}

// apiError is the structured error body shape of the Anthropic and OpenAI
// service families: {"error": {"type": "...", "message": "..."}}.
type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Classify maps a transport error to a RemoteError. HTTP status codes and
// structured error types are checked first; substring matching on the error
// text is the fallback for transports that only surface a flat message.
func Classify(err error) *RemoteError {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return classifyHTTP(httpErr)
	}

	return classifyText(err.Error())
}

func classifyHTTP(err *HTTPError) *RemoteError {
	var body apiError
	structured := json.Unmarshal(err.Body, &body) == nil && body.Error.Message != ""

	switch {
	case err.StatusCode == 429:
		return &RemoteError{Kind: KindRateLimited}
	case err.StatusCode == 401 || err.StatusCode == 403:
		return &RemoteError{Kind: KindUnauthorized}
	}

	if structured {
		switch body.Error.Type {
		case "rate_limit_error":
			return &RemoteError{Kind: KindRateLimited}
		case "authentication_error", "permission_error":
			return &RemoteError{Kind: KindUnauthorized}
		}
		lower := strings.ToLower(body.Error.Message)
		if strings.Contains(lower, "credit balance") || strings.Contains(lower, "too low") {
			return &RemoteError{Kind: KindInsufficientCredit}
		}
		return &RemoteError{Kind: KindUnknown, Message: body.Error.Message}
	}

	return classifyText(err.Error())
}

func classifyText(msg string) *RemoteError {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "rate_limit") || strings.Contains(lower, "rate limit") || strings.Contains(lower, "429"):
		return &RemoteError{Kind: KindRateLimited}
	case strings.Contains(lower, "authentication") || strings.Contains(lower, "unauthorized") || strings.Contains(lower, "401"):
		return &RemoteError{Kind: KindUnauthorized}
	case strings.Contains(lower, "credit balance") || strings.Contains(lower, "too low"):
		return &RemoteError{Kind: KindInsufficientCredit}
	}

	// Best effort: pull the message field out of an error body embedded in
	// the text before falling back to the raw error.
	var body apiError
	if start := strings.Index(msg, "{"); start != -1 {
		if json.Unmarshal([]byte(msg[start:]), &body) == nil && body.Error.Message != "" {
			return &RemoteError{Kind: KindUnknown, Message: body.Error.Message}
		}
	}

	return &RemoteError{Kind: KindUnknown, Message: msg}
}
