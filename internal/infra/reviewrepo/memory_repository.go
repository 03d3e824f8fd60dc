package reviewrepo

import (
	"context"
	"sync"

	"github.com/yanqian/product-reviews/internal/domain/review"
	"github.com/yanqian/product-reviews/pkg/util"
)

// AuthorLookup resolves review authors for list responses.
type AuthorLookup interface {
	GetByID(ctx context.Context, id int64) (review.Author, bool, error)
}

// MemoryRepository keeps reviews in insertion order.
type MemoryRepository struct {
	mu      sync.RWMutex
	reviews []review.Review
	authors AuthorLookup
	seq     int64
}

// NewMemoryRepository constructs an empty repository. authors may be nil, in
// which case listed reviews carry no author snapshot.
func NewMemoryRepository(authors AuthorLookup) *MemoryRepository {
	return &MemoryRepository{authors: authors}
}

// Create appends a review.
func (r *MemoryRepository) Create(_ context.Context, in review.NewReview) (review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	now := util.NowUTC()
	out := review.Review{
		ID:        r.seq,
		Comment:   in.Comment,
		Rating:    in.Rating,
		ProductID: in.ProductID,
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.reviews = append(r.reviews, out)
	return out, nil
}

// ListByProduct returns the product's reviews in creation order.
func (r *MemoryRepository) ListByProduct(ctx context.Context, productID int64) ([]review.Review, error) {
	r.mu.RLock()
	var out []review.Review
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	r.mu.RUnlock()

	if r.authors == nil {
		return out, nil
	}
	for i := range out {
		author, found, err := r.authors.GetByID(ctx, out[i].UserID)
		if err != nil {
			return nil, err
		}
		if found {
			a := author
			out[i].User = &a
		}
	}
	return out, nil
}

// DeleteByUser drops every review written by userID.
func (r *MemoryRepository) DeleteByUser(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.reviews[:0]
	for _, rv := range r.reviews {
		if rv.UserID != userID {
			kept = append(kept, rv)
		}
	}
	clear(r.reviews[len(kept):])
	r.reviews = kept
	return nil
}

var _ review.Repository = (*MemoryRepository)(nil)
