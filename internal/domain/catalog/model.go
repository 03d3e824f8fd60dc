package catalog

import (
	"context"
	"strings"
	"time"
)

// Product is an immutable snapshot of a catalog entry.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DescriptionText returns the trimmed description, or "" when absent.
func (p Product) DescriptionText() string {
	if p.Description == nil {
		return ""
	}
	return strings.TrimSpace(*p.Description)
}

// NewProduct is the write model handed to repositories.
type NewProduct struct {
	Name        string
	Description *string
	Price       float64
}

// CreateRequest is the payload accepted by POST /products.
type CreateRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price"`
}

// Repository persists products.
type Repository interface {
	Create(ctx context.Context, p NewProduct) (Product, error)
	CreateMany(ctx context.Context, products []NewProduct) (int, error)
	GetByID(ctx context.Context, id int64) (Product, bool, error)
	Count(ctx context.Context) (int, error)
}

// Cache holds product snapshots. Products never change after creation, so
// entries need no invalidation.
type Cache interface {
	Get(ctx context.Context, id int64) (Product, bool, error)
	Set(ctx context.Context, p Product) error
}
