package review

import (
	"context"
	"time"
)

// Author is the public view of the user who wrote a review.
type Author struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Review is a persisted customer review.
type Review struct {
	ID        int64     `json:"id"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	ProductID int64     `json:"productId"`
	UserID    int64     `json:"userId"`
	User      *Author   `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewReview is the write model handed to repositories.
type NewReview struct {
	Comment   string
	Rating    int
	ProductID int64
	UserID    int64
}

// CreateRequest is the payload accepted by POST /products/:id/reviews.
type CreateRequest struct {
	Comment string `json:"comment"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
}

// Repository persists reviews.
type Repository interface {
	Create(ctx context.Context, r NewReview) (Review, error)
	// ListByProduct returns reviews in creation order.
	ListByProduct(ctx context.Context, productID int64) ([]Review, error)
}
