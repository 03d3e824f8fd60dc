package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

// Service exposes account workflows. Every method returns views, never the
// stored password hash.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (View, error)
	List(ctx context.Context) ([]View, error)
	FindByID(ctx context.Context, id int64) (View, error)
	FindByEmail(ctx context.Context, email string) (View, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (View, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	cfg    Config
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a Service instance.
func NewService(cfg Config, repo Repository, logger *slog.Logger) Service {
	if cfg.PasswordCost == 0 {
		cfg.PasswordCost = bcrypt.DefaultCost
	}
	return &service{
		cfg:    cfg,
		repo:   repo,
		logger: logger.With("component", "user.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (View, error) {
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeInvalidInput, "email must be a valid email address", err)
	}
	hashed, err := s.hash(req.Password)
	if err != nil {
		return View{}, err
	}
	u, err := s.repo.Create(ctx, email, hashed)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return View{}, apperrors.Wrap(apperrors.CodeEmailExists, "user with this email already exists", err)
		}
		return View{}, apperrors.Wrap(apperrors.CodeStorage, "failed to create user", err)
	}
	s.logger.Info("user created", "user_id", u.ID)
	return toView(u), nil
}

func (s *service) List(ctx context.Context) ([]View, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "failed to list users", err)
	}
	views := make([]View, 0, len(users))
	for _, u := range users {
		views = append(views, toView(u))
	}
	return views, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (View, error) {
	u, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load user", err)
	}
	if !found {
		return View{}, notFoundByID(id)
	}
	return toView(u), nil
}

func (s *service) FindByEmail(ctx context.Context, email string) (View, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeInvalidInput, "email must be a valid email address", err)
	}
	u, found, err := s.repo.GetByEmail(ctx, normalized)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load user", err)
	}
	if !found {
		return View{}, apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("user with email %s not found", normalized), nil)
	}
	return toView(u), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (View, error) {
	current, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load user", err)
	}
	if !found {
		return View{}, notFoundByID(id)
	}

	var changes Changes
	if req.Email != nil {
		email, err := NormalizeEmail(*req.Email)
		if err != nil {
			return View{}, apperrors.Wrap(apperrors.CodeInvalidInput, "email must be a valid email address", err)
		}
		changes.Email = &email
	}
	if req.Password != nil {
		hashed, err := s.hash(*req.Password)
		if err != nil {
			return View{}, err
		}
		changes.PasswordHash = &hashed
	}
	if changes.IsEmpty() {
		return toView(current), nil
	}

	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return View{}, notFoundByID(id)
		case errors.Is(err, ErrEmailExists):
			return View{}, apperrors.Wrap(apperrors.CodeEmailExists, "user with this email already exists", err)
		}
		return View{}, apperrors.Wrap(apperrors.CodeStorage, "failed to update user", err)
	}
	return toView(updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	_, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "failed to load user", err)
	}
	if !found {
		return notFoundByID(id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFoundByID(id)
		}
		return apperrors.Wrap(apperrors.CodeStorage, "failed to delete user", err)
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}

func (s *service) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.PasswordCost)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInternal, "failed to hash password", err)
	}
	return string(hashed), nil
}

func notFoundByID(id int64) error {
	return apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("user with ID %d not found", id), nil)
}
