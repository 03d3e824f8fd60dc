package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

// Service exposes catalog operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (Product, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	Seed(ctx context.Context) (int, error)
}

type service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService wires the catalog domain.
func NewService(repo Repository, cache Cache, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		cache:  cache,
		logger: logger.With("component", "catalog.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (Product, error) {
	var price float64
	if req.Price != nil {
		price = roundCents(*req.Price)
	}
	p, err := s.repo.Create(ctx, NewProduct{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       price,
	})
	if err != nil {
		return Product{}, apperrors.Wrap(apperrors.CodeStorage, "failed to create product", err)
	}
	s.remember(ctx, p)
	s.logger.Info("product created", "product_id", p.ID)
	return p, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (Product, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn("product cache read failed", "product_id", id, "error", err)
		} else if ok {
			return cached, nil
		}
	}

	p, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load product", err)
	}
	if !found {
		return Product{}, apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("product with ID %d not found", id), nil)
	}
	s.remember(ctx, p)
	return p, nil
}

// Seed inserts the default products when the catalog is empty and reports
// how many rows were written.
func (s *service) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeStorage, "failed to count products", err)
	}
	if count > 0 {
		return 0, nil
	}
	inserted, err := s.repo.CreateMany(ctx, defaultProducts)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeStorage, "failed to seed products", err)
	}
	s.logger.Info("seeded initial products", "count", inserted)
	return inserted, nil
}

func (s *service) remember(ctx context.Context, p Product) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, p); err != nil {
		s.logger.Warn("product cache write failed", "product_id", p.ID, "error", err)
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
