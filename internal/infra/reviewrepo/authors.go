package reviewrepo

import (
	"context"

	"github.com/yanqian/product-reviews/internal/domain/review"
	"github.com/yanqian/product-reviews/internal/domain/user"
)

// UserAuthors adapts a user repository to AuthorLookup.
type UserAuthors struct {
	Users user.Repository
}

// GetByID implements AuthorLookup.
func (a UserAuthors) GetByID(ctx context.Context, id int64) (review.Author, bool, error) {
	u, found, err := a.Users.GetByID(ctx, id)
	if err != nil || !found {
		return review.Author{}, found, err
	}
	return review.Author{ID: u.ID, Email: u.Email}, true, nil
}
