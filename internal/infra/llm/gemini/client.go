package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/yanqian/product-reviews/internal/domain/summarizer"
	"github.com/yanqian/product-reviews/pkg/metrics"
)

// ContentGenerator is the part of genai.Models used here.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client adapts the Gemini API to summarizer.LLM.
type Client struct {
	models ContentGenerator
}

// NewClient builds a Gemini API client for the given key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{models: cli.Models}, nil
}

// NewClientWithGenerator is used by tests and alternative transports.
func NewClientWithGenerator(models ContentGenerator) *Client {
	return &Client{models: models}
}

// Provider names the backend for logs and metrics.
func (c *Client) Provider() string { return "gemini" }

// Complete implements summarizer.LLM. Each candidate's text parts are
// concatenated into one choice.
func (c *Client) Complete(ctx context.Context, prompt summarizer.Prompt) (summarizer.Completion, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(prompt.Temperature),
	}
	if prompt.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(prompt.MaxTokens)
	}

	resp, err := c.models.GenerateContent(ctx, prompt.Model, genai.Text(prompt.Text), cfg)
	if err != nil {
		return summarizer.Completion{}, fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return summarizer.Completion{}, nil
	}

	out := summarizer.Completion{Choices: make([]string, 0, len(resp.Candidates))}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var b strings.Builder
		for _, part := range cand.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
		out.Choices = append(out.Choices, b.String())
	}
	if usage := resp.UsageMetadata; usage != nil {
		out.Usage = metrics.TokenUsage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}
	return out, nil
}
