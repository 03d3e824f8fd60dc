package productrepo

import (
	"context"
	"sync"

	"github.com/yanqian/product-reviews/internal/domain/catalog"
	"github.com/yanqian/product-reviews/pkg/util"
)

// MemoryRepository keeps products in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	products map[int64]catalog.Product
	seq      int64
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{products: make(map[int64]catalog.Product)}
}

// Create stores a product and assigns its id.
func (r *MemoryRepository) Create(_ context.Context, p catalog.NewProduct) (catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(p), nil
}

// CreateMany stores products in order.
func (r *MemoryRepository) CreateMany(_ context.Context, products []catalog.NewProduct) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		r.insert(p)
	}
	return len(products), nil
}

// GetByID fetches by ID.
func (r *MemoryRepository) GetByID(_ context.Context, id int64) (catalog.Product, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	return p, ok, nil
}

// Count returns the number of stored products.
func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

func (r *MemoryRepository) insert(p catalog.NewProduct) catalog.Product {
	r.seq++
	now := util.NowUTC()
	var desc *string
	if p.Description != nil {
		d := *p.Description
		desc = &d
	}
	out := catalog.Product{
		ID:          r.seq,
		Name:        p.Name,
		Description: desc,
		Price:       p.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.products[out.ID] = out
	return out
}

var _ catalog.Repository = (*MemoryRepository)(nil)
