package review

import (
	"context"
	"errors"
	"log/slog"

	"github.com/yanqian/product-reviews/internal/domain/catalog"
	"github.com/yanqian/product-reviews/internal/domain/user"
	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

// ProductLookup resolves the product a review targets.
type ProductLookup interface {
	FindByID(ctx context.Context, id int64) (catalog.Product, error)
}

// UserLookup resolves the review author by email.
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (user.View, error)
}

// Service exposes review workflows.
type Service interface {
	Create(ctx context.Context, productID int64, req CreateRequest) (Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]Review, error)
}

type service struct {
	repo     Repository
	products ProductLookup
	users    UserLookup
	logger   *slog.Logger
}

// NewService wires the review domain.
func NewService(repo Repository, products ProductLookup, users UserLookup, logger *slog.Logger) Service {
	return &service{
		repo:     repo,
		products: products,
		users:    users,
		logger:   logger.With("component", "review.service"),
	}
}

// Create attaches a review to an existing product on behalf of an existing
// user. Nothing is written when either lookup fails.
func (s *service) Create(ctx context.Context, productID int64, req CreateRequest) (Review, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return Review{}, err
	}
	author, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return Review{}, err
	}

	created, err := s.repo.Create(ctx, NewReview{
		Comment:   req.Comment,
		Rating:    req.Rating,
		ProductID: productID,
		UserID:    author.ID,
	})
	if err != nil {
		if errors.Is(err, ErrReferenceMissing) {
			return Review{}, apperrors.Wrap(apperrors.CodeNotFound, "product or user no longer exists", err)
		}
		return Review{}, apperrors.Wrap(apperrors.CodeStorage, "failed to create review", err)
	}
	created.User = &Author{ID: author.ID, Email: author.Email}
	s.logger.Info("review created", "review_id", created.ID, "product_id", productID, "user_id", author.ID)
	return created, nil
}

func (s *service) ListByProduct(ctx context.Context, productID int64) ([]Review, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "failed to list reviews", err)
	}
	if reviews == nil {
		reviews = []Review{}
	}
	return reviews, nil
}
