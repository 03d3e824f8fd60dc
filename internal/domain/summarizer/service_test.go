package summarizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/product-reviews/internal/domain/catalog"
	"github.com/yanqian/product-reviews/internal/domain/review"
	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

func TestSummarizeText_CallsProviderOnce(t *testing.T) {
	llm := &stubLLM{completion: Completion{Choices: []string{"  short summary \n", "ignored"}}}
	svc := newTestService(llm, stubProducts{}, stubReviews{})

	got, err := svc.SummarizeText(context.Background(), "A long article about Go.")
	require.NoError(t, err)
	require.Equal(t, "short summary", got)
	require.Len(t, llm.prompts, 1)

	prompt := llm.prompts[0]
	require.Equal(t, DefaultTextPrompt+"A long article about Go.", prompt.Text)
	require.Equal(t, "gpt-4o-mini", prompt.Model)
	require.Equal(t, 200, prompt.MaxTokens)
	require.InDelta(t, 0.7, prompt.Temperature, 0.0001)
}

func TestSummarizeText_WhitespaceSkipsProvider(t *testing.T) {
	llm := &stubLLM{}
	svc := newTestService(llm, stubProducts{}, stubReviews{})

	for _, in := range []string{"", "   ", "\n\t "} {
		got, err := svc.SummarizeText(context.Background(), in)
		require.NoError(t, err)
		require.Equal(t, NoContentSummary, got)
	}
	require.Empty(t, llm.prompts)
}

func TestSummarizeText_ControlCharactersAreContent(t *testing.T) {
	llm := &stubLLM{completion: Completion{Choices: []string{"bell"}}}
	svc := newTestService(llm, stubProducts{}, stubReviews{})

	got, err := svc.SummarizeText(context.Background(), " \x07 ")
	require.NoError(t, err)
	require.Equal(t, "bell", got)
	require.Len(t, llm.prompts, 1)
	require.Equal(t, DefaultTextPrompt+"\x07", llm.prompts[0].Text)
}

func TestSummarizeProductReviews_CommentsAreNotEscaped(t *testing.T) {
	llm := &stubLLM{completion: Completion{Choices: []string{"ok"}}}
	products := stubProducts{1: {ID: 1, Name: "Laptop Pro X", Price: 1500}}
	reviews := stubReviews{1: {{Rating: 4, Comment: "He said \"wow\"\nthen left"}}}
	svc := newTestService(llm, products, reviews)

	_, err := svc.SummarizeProductReviews(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, DefaultReviewsPrompt+"Review 1 (Rating 4/5): \"He said \"wow\"\nthen left\"", llm.prompts[0].Text)
}

func TestSummarizeText_NoUsableChoice(t *testing.T) {
	tests := []struct {
		name    string
		choices []string
	}{
		{name: "no choices"},
		{name: "blank choice", choices: []string{"   "}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			llm := &stubLLM{completion: Completion{Choices: tt.choices}}
			svc := newTestService(llm, stubProducts{}, stubReviews{})

			got, err := svc.SummarizeText(context.Background(), "hello")
			require.NoError(t, err)
			require.Equal(t, NoResultSummary, got)
		})
	}
}

func TestSummarizeText_ProviderFailureIsMasked(t *testing.T) {
	llm := &stubLLM{err: errors.New("status 503: upstream secret detail")}
	svc := newTestService(llm, stubProducts{}, stubReviews{})

	_, err := svc.SummarizeText(context.Background(), "hello")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeSummaryFailed))
	require.Equal(t, "failed to generate summary", apperrors.MessageOf(err))
}

func TestSummarizeProduct_LaptopScenario(t *testing.T) {
	llm := &stubLLM{completion: Completion{Choices: []string{"A well-reviewed laptop."}}}
	products := stubProducts{1: {ID: 1, Name: "Laptop Pro X", Price: 1500}}
	reviews := stubReviews{1: {{ID: 1, ProductID: 1, Rating: 5, Comment: "Great"}}}
	svc := newTestService(llm, products, reviews)

	id := int64(1)
	resp, err := svc.Summarize(context.Background(), Request{ProductID: &id})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Summary)
	require.Len(t, llm.prompts, 1)

	text := llm.prompts[0].Text
	require.True(t, strings.HasPrefix(text, DefaultProductPrompt))
	require.Contains(t, text, "Product Name: Laptop Pro X")
	require.Contains(t, text, "Product Price: $1500.00")
	require.Contains(t, text, "No product description available.")
	require.Contains(t, text, `Review 1 (Rating 5/5): "Great"`)
	require.NotContains(t, text, "No reviews available for this product.")
}

func TestSummarizeProduct_NoReviewsMarker(t *testing.T) {
	desc := "Comfortable mouse for long use."
	llm := &stubLLM{completion: Completion{Choices: []string{"ok"}}}
	products := stubProducts{2: {ID: 2, Name: "Wireless Ergonomic Mouse", Description: &desc, Price: 45.99}}
	svc := newTestService(llm, products, stubReviews{})

	_, err := svc.SummarizeProduct(context.Background(), 2)
	require.NoError(t, err)
	text := llm.prompts[0].Text
	require.Contains(t, text, "Product Description: Comfortable mouse for long use.")
	require.Contains(t, text, "Product Price: $45.99")
	require.Contains(t, text, "No reviews available for this product.")
}

func TestSummarizeProduct_EnumeratesReviewsInOrder(t *testing.T) {
	llm := &stubLLM{completion: Completion{Choices: []string{"ok"}}}
	products := stubProducts{3: {ID: 3, Name: "4K Monitor 27-inch", Price: 399}}
	reviews := stubReviews{3: {
		{Rating: 4, Comment: "Sharp"},
		{Rating: 2, Comment: "Dead pixel"},
		{Rating: 5, Comment: "Love it"},
	}}
	svc := newTestService(llm, products, reviews)

	_, err := svc.SummarizeProduct(context.Background(), 3)
	require.NoError(t, err)
	text := llm.prompts[0].Text
	first := strings.Index(text, `Review 1 (Rating 4/5): "Sharp"`)
	second := strings.Index(text, `Review 2 (Rating 2/5): "Dead pixel"`)
	third := strings.Index(text, `Review 3 (Rating 5/5): "Love it"`)
	require.True(t, first >= 0 && first < second && second < third)
}

func TestSummarizeProduct_NotFoundSkipsProvider(t *testing.T) {
	llm := &stubLLM{}
	svc := newTestService(llm, stubProducts{}, stubReviews{})

	_, err := svc.SummarizeProduct(context.Background(), 9)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	require.Empty(t, llm.prompts)
}

func TestSummarizeProductDescription(t *testing.T) {
	desc := "Powerful laptop for professionals."
	llm := &stubLLM{completion: Completion{Choices: []string{"Pro laptop."}}}
	products := stubProducts{
		1: {ID: 1, Name: "Laptop Pro X", Description: &desc, Price: 1500},
		2: {ID: 2, Name: "Bare", Price: 1},
	}
	svc := newTestService(llm, products, stubReviews{})

	got, err := svc.SummarizeProductDescription(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, NoDescriptionSummary, got)
	require.Empty(t, llm.prompts)

	got, err = svc.SummarizeProductDescription(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Pro laptop.", got)
	require.Equal(t, DefaultDescriptionPrompt+desc, llm.prompts[0].Text)
}

func TestSummarizeProductReviews(t *testing.T) {
	llm := &stubLLM{completion: Completion{Choices: []string{"Mostly positive."}}}
	products := stubProducts{1: {ID: 1, Name: "Laptop Pro X", Price: 1500}, 2: {ID: 2, Name: "Quiet", Price: 5}}
	reviews := stubReviews{1: {{Rating: 5, Comment: "Great"}, {Rating: 3, Comment: "Heavy"}}}
	svc := newTestService(llm, products, reviews)

	got, err := svc.SummarizeProductReviews(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, NoReviewsSummary, got)
	require.Empty(t, llm.prompts)

	got, err = svc.SummarizeProductReviews(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Mostly positive.", got)
	require.Equal(t, DefaultReviewsPrompt+"Review 1 (Rating 5/5): \"Great\"\n\nReview 2 (Rating 3/5): \"Heavy\"", llm.prompts[0].Text)

	_, err = svc.SummarizeProductReviews(context.Background(), 7)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestSummarize_RoutesText(t *testing.T) {
	llm := &stubLLM{completion: Completion{Choices: []string{"tl;dr"}}}
	svc := newTestService(llm, stubProducts{}, stubReviews{})

	text := "some text"
	resp, err := svc.Summarize(context.Background(), Request{Text: &text})
	require.NoError(t, err)
	require.Equal(t, "tl;dr", resp.Summary)
}

func TestSummarize_NeitherFieldIsInternal(t *testing.T) {
	llm := &stubLLM{}
	svc := newTestService(llm, stubProducts{}, stubReviews{})

	_, err := svc.Summarize(context.Background(), Request{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInternal))
	require.Empty(t, llm.prompts)
}

func TestRequestValidate(t *testing.T) {
	text := "hello"
	empty := ""
	id := int64(1)
	zero := int64(0)
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{name: "text only", req: Request{Text: &text}},
		{name: "product only", req: Request{ProductID: &id}},
		{name: "neither", req: Request{}, wantErr: true},
		{name: "both", req: Request{Text: &text, ProductID: &id}, wantErr: true},
		{name: "empty text", req: Request{Text: &empty}, wantErr: true},
		{name: "zero product", req: Request{ProductID: &zero}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
		})
	}
}

func newTestService(llm LLM, products stubProducts, reviews stubReviews) Service {
	cfg := Config{Model: "gpt-4o-mini", MaxTokens: 200, Temperature: 0.7}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(cfg, llm, products, reviews, wordCounter{}, logger)
}

type stubLLM struct {
	completion Completion
	err        error
	prompts    []Prompt
}

func (s *stubLLM) Complete(_ context.Context, prompt Prompt) (Completion, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return Completion{}, s.err
	}
	return s.completion, nil
}

func (s *stubLLM) Provider() string { return "stub" }

type stubProducts map[int64]catalog.Product

func (s stubProducts) FindByID(_ context.Context, id int64) (catalog.Product, error) {
	p, ok := s[id]
	if !ok {
		return catalog.Product{}, apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("product with ID %d not found", id), nil)
	}
	return p, nil
}

type stubReviews map[int64][]review.Review

func (s stubReviews) ListByProduct(_ context.Context, productID int64) ([]review.Review, error) {
	return s[productID], nil
}

type wordCounter struct{}

func (wordCounter) Count(text string) int { return len(strings.Fields(text)) }

