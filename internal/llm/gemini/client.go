package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"resume-matcher/internal/llm"
)

const (
	defaultModel   = "gemini-2.5-flash-lite"
	defaultTimeout = 90 * time.Second

	temperature     = float32(0.3)
	maxOutputTokens = int32(2048)
)

// Client implements llm.Client against the Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient constructs a Gemini-backed client. The timeout bounds each
// inference call; there are no retries.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("GOOGLE_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{client: client, model: model, timeout: timeout}, nil
}

// Analyze sends resume text for structured analysis.
func (c *Client) Analyze(ctx context.Context, resumeText string) (string, error) {
	return c.generate(ctx, llm.AnalyzeSystemPrompt, llm.AnalyzeUserPrompt(resumeText))
}

// Chat answers a user message grounded in the given resume context.
func (c *Client) Chat(ctx context.Context, resumeContext, message string) (string, error) {
	return c.generate(ctx, llm.ChatSystemPrompt(resumeContext), message)
}

func (c *Client) generate(ctx context.Context, system, user string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: maxOutputTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}

	result, err := c.client.Models.GenerateContent(callCtx, c.model, genai.Text(user), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.New("gemini response empty content")
	}
	return text, nil
}

var _ llm.Client = (*Client)(nil)
