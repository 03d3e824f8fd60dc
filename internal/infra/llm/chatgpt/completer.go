package chatgpt

import (
	"context"

	"github.com/yanqian/product-reviews/internal/domain/summarizer"
	"github.com/yanqian/product-reviews/pkg/metrics"
)

// ChatClient is the subset of Client used by Completer.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error)
}

// Completer adapts the chat completions API to summarizer.LLM. The prompt
// is sent as a single user message.
type Completer struct {
	client ChatClient
}

// NewCompleter wraps a chat client.
func NewCompleter(client ChatClient) *Completer {
	return &Completer{client: client}
}

// Provider names the backend for logs and metrics.
func (c *Completer) Provider() string { return "openai" }

// Complete implements summarizer.LLM.
func (c *Completer) Complete(ctx context.Context, prompt summarizer.Prompt) (summarizer.Completion, error) {
	resp, err := c.client.CreateChatCompletion(ctx, ChatCompletionRequest{
		Model:       prompt.Model,
		Messages:    []Message{{Role: "user", Content: prompt.Text}},
		MaxTokens:   prompt.MaxTokens,
		Temperature: prompt.Temperature,
	})
	if err != nil {
		return summarizer.Completion{}, err
	}
	choices := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		choices = append(choices, choice.Message.Content)
	}
	return summarizer.Completion{
		Choices: choices,
		Usage: metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
