package llm

import (
	"context"
	"errors"
)

// Client abstracts the hosted language-model inference call. Both methods are
// single-shot: callers get the model's raw text back and own any retries
// (this service performs none).
type Client interface {
	// Analyze sends resume text for structured analysis and returns the raw
	// model output, which may or may not contain valid JSON.
	Analyze(ctx context.Context, resumeText string) (string, error)
	// Chat answers a user message grounded in the given resume context.
	Chat(ctx context.Context, resumeContext, message string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation for environments without a
// provider API key.
type PlaceholderClient struct{}

// Analyze returns ErrNotConfigured.
func (PlaceholderClient) Analyze(ctx context.Context, resumeText string) (string, error) {
	_ = ctx
	_ = resumeText
	return "", ErrNotConfigured
}

// Chat returns ErrNotConfigured.
func (PlaceholderClient) Chat(ctx context.Context, resumeContext, message string) (string, error) {
	_ = ctx
	_ = resumeContext
	_ = message
	return "", ErrNotConfigured
}
