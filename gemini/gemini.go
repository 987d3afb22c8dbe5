// Package gemini wraps the generative-language endpoint behind a tiny
// client. One client per process; a single call per request, no retries.
package gemini

import (
	"context"
	"errors"
	"os"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// ErrMissingAPIKey marks the fatal configuration error: without a credential
// the whole chat surface refuses to start.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// ErrEmptyResponse is returned when the provider answers with no text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// TextGenerator is what the feature packages consume; tests plug in fakes.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Client is safe for concurrent use after construction.
type Client struct {
	genai *genai.Client
	model string
}

// New reads GEMINI_API_KEY and builds the provider client. Construct at most
// once per process and share the handle.
func New(ctx context.Context) (*Client, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{genai: c, model: defaultModel}, nil
}

// GenerateText submits one prompt and returns the response text. Failures
// are returned as-is for the handler to surface; state is never touched.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.5),
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// CleanJSON strips the optional ```json fences the model wraps around data
// responses. Content without fences passes through unchanged.
func CleanJSON(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
