package summarizer

import (
	"context"

	"github.com/yanqian/product-reviews/pkg/metrics"
)

// Config fixes the completion parameters and prompt prefixes at construction.
type Config struct {
	Model             string
	MaxTokens         int
	Temperature       float32
	TextPrompt        string
	ProductPrompt     string
	DescriptionPrompt string
	ReviewsPrompt     string
}

// Request is the body of POST /Ai/summary. Exactly one field must be set.
type Request struct {
	Text      *string `json:"text,omitempty"`
	ProductID *int64  `json:"productId,omitempty"`
}

// Response is returned by every summary endpoint.
type Response struct {
	Summary string `json:"summary"`
}

// Prompt is a single completion request.
type Prompt struct {
	Model       string
	Text        string
	MaxTokens   int
	Temperature float32
}

// Completion carries the candidate texts returned by the provider.
type Completion struct {
	Choices []string
	Usage   metrics.TokenUsage
}

// LLM is the completion collaborator. Implementations make exactly one
// upstream attempt per call.
type LLM interface {
	Complete(ctx context.Context, prompt Prompt) (Completion, error)
	Provider() string
}

// TokenCounter estimates prompt size.
type TokenCounter interface {
	Count(text string) int
}
