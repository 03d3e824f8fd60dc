package tokenizer

import (
	"log/slog"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// Counter estimates prompt tokens with the model's BPE encoding. When no
// encoding can be loaded it falls back to a word-count heuristic.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// New loads the encoding for model, falling back to cl100k_base for models
// tiktoken does not know (Gemini, custom deployments).
func New(model string, logger *slog.Logger) *Counter {
	logger = logger.With("component", "tokenizer")
	enc, err := tiktoken.EncodingForModel(model)
	if err == nil {
		return &Counter{enc: enc}
	}
	enc, err = tiktoken.GetEncoding(fallbackEncoding)
	if err != nil {
		logger.Warn("token encoding unavailable, using heuristic", "model", model, "error", err)
		return &Counter{}
	}
	return &Counter{enc: enc}
}

// Count returns the estimated token count of text.
func (c *Counter) Count(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	if c != nil && c.enc != nil {
		return len(c.enc.Encode(text, nil, nil))
	}
	return estimate(text)
}

func estimate(text string) int {
	if words := len(strings.Fields(text)); words > 0 {
		return words
	}
	n := len(text) / 4
	if n == 0 {
		n = 1
	}
	return n
}
