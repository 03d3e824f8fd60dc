package summarizer

import (
	"context"
	"log/slog"
	"time"

	"github.com/yanqian/product-reviews/internal/domain/catalog"
	"github.com/yanqian/product-reviews/internal/domain/review"
	apperrors "github.com/yanqian/product-reviews/pkg/errors"
	"github.com/yanqian/product-reviews/pkg/metrics"
)

// Summary sources, used as metric labels.
const (
	sourceText        = "text"
	sourceProduct     = "product"
	sourceDescription = "description"
	sourceReviews     = "reviews"
)

// Service composes prompts from free text or catalog data and asks the
// language model for a summary.
type Service interface {
	Summarize(ctx context.Context, req Request) (Response, error)
	SummarizeText(ctx context.Context, text string) (string, error)
	SummarizeProduct(ctx context.Context, productID int64) (string, error)
	SummarizeProductDescription(ctx context.Context, productID int64) (string, error)
	SummarizeProductReviews(ctx context.Context, productID int64) (string, error)
}

// ProductFinder resolves catalog products.
type ProductFinder interface {
	FindByID(ctx context.Context, id int64) (catalog.Product, error)
}

// ReviewLister returns a product's reviews in creation order.
type ReviewLister interface {
	ListByProduct(ctx context.Context, productID int64) ([]review.Review, error)
}

type service struct {
	cfg      Config
	llm      LLM
	products ProductFinder
	reviews  ReviewLister
	counter  TokenCounter
	logger   *slog.Logger
}

// NewService is a wire provider for the summarizer domain.
func NewService(cfg Config, llm LLM, products ProductFinder, reviews ReviewLister, counter TokenCounter, logger *slog.Logger) Service {
	if cfg.TextPrompt == "" {
		cfg.TextPrompt = DefaultTextPrompt
	}
	if cfg.ProductPrompt == "" {
		cfg.ProductPrompt = DefaultProductPrompt
	}
	if cfg.DescriptionPrompt == "" {
		cfg.DescriptionPrompt = DefaultDescriptionPrompt
	}
	if cfg.ReviewsPrompt == "" {
		cfg.ReviewsPrompt = DefaultReviewsPrompt
	}
	return &service{
		cfg:      cfg,
		llm:      llm,
		products: products,
		reviews:  reviews,
		counter:  counter,
		logger:   logger.With("component", "summarizer.service"),
	}
}

func (s *service) Summarize(ctx context.Context, req Request) (Response, error) {
	var (
		summary string
		err     error
	)
	switch {
	case req.Text != nil:
		summary, err = s.SummarizeText(ctx, *req.Text)
	case req.ProductID != nil:
		summary, err = s.SummarizeProduct(ctx, *req.ProductID)
	default:
		return Response{}, apperrors.Wrap(apperrors.CodeInternal, "no text or productId provided for summarization", nil)
	}
	if err != nil {
		return Response{}, err
	}
	return Response{Summary: summary}, nil
}

func (s *service) SummarizeText(ctx context.Context, text string) (string, error) {
	text = normalize(text)
	if text == "" {
		metrics.ObserveSummary(sourceText, metrics.OutcomeSkipped)
		return NoContentSummary, nil
	}
	return s.complete(ctx, sourceText, s.cfg.TextPrompt+text)
}

func (s *service) SummarizeProduct(ctx context.Context, productID int64) (string, error) {
	product, err := s.findProduct(ctx, sourceProduct, productID)
	if err != nil {
		return "", err
	}
	reviews, err := s.listReviews(ctx, productID)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, sourceProduct, s.cfg.ProductPrompt+productDocument(product, reviews))
}

func (s *service) SummarizeProductDescription(ctx context.Context, productID int64) (string, error) {
	product, err := s.findProduct(ctx, sourceDescription, productID)
	if err != nil {
		return "", err
	}
	desc := normalize(product.DescriptionText())
	if desc == "" {
		metrics.ObserveSummary(sourceDescription, metrics.OutcomeSkipped)
		return NoDescriptionSummary, nil
	}
	return s.complete(ctx, sourceDescription, s.cfg.DescriptionPrompt+desc)
}

func (s *service) SummarizeProductReviews(ctx context.Context, productID int64) (string, error) {
	if _, err := s.findProduct(ctx, sourceReviews, productID); err != nil {
		return "", err
	}
	reviews, err := s.listReviews(ctx, productID)
	if err != nil {
		return "", err
	}
	if len(reviews) == 0 {
		metrics.ObserveSummary(sourceReviews, metrics.OutcomeSkipped)
		return NoReviewsSummary, nil
	}
	return s.complete(ctx, sourceReviews, s.cfg.ReviewsPrompt+reviewLines(reviews, "\n\n"))
}

func (s *service) findProduct(ctx context.Context, source string, productID int64) (catalog.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			metrics.ObserveSummary(source, metrics.OutcomeNotFound)
		}
		return catalog.Product{}, err
	}
	return product, nil
}

func (s *service) listReviews(ctx context.Context, productID int64) ([]review.Review, error) {
	reviews, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "failed to load reviews", err)
	}
	return reviews, nil
}

// complete performs the single provider call for a fully built prompt.
func (s *service) complete(ctx context.Context, source, text string) (string, error) {
	provider := s.llm.Provider()
	if s.counter != nil {
		tokens := s.counter.Count(text)
		metrics.ObservePromptTokens(tokens)
		s.logger.Debug("sending completion request", "source", source, "provider", provider, "prompt_tokens", tokens)
	}

	start := time.Now()
	completion, err := s.llm.Complete(ctx, Prompt{
		Model:       s.cfg.Model,
		Text:        text,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveCompletion(provider, metrics.OutcomeFailed, elapsed)
		metrics.ObserveSummary(source, metrics.OutcomeFailed)
		s.logger.Error("completion request failed", "source", source, "provider", provider, "error", err)
		return "", apperrors.Wrap(apperrors.CodeSummaryFailed, "failed to generate summary", err)
	}
	metrics.ObserveCompletion(provider, metrics.OutcomeOK, elapsed)

	summary := firstChoice(completion.Choices)
	if summary == "" {
		metrics.ObserveSummary(source, metrics.OutcomeEmpty)
		s.logger.Warn("completion returned no usable choice", "source", source, "provider", provider)
		return NoResultSummary, nil
	}
	metrics.ObserveSummary(source, metrics.OutcomeOK)
	if !completion.Usage.IsZero() {
		s.logger.Info("summary generated",
			"source", source,
			"provider", provider,
			"duration_ms", elapsed.Milliseconds(),
			"total_tokens", completion.Usage.TotalTokens,
		)
	}
	return summary, nil
}
