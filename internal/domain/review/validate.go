package review

import (
	"strings"

	"github.com/yanqian/product-reviews/internal/domain/user"
	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Validate checks the create payload.
func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Comment) == "" {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "comment cannot be empty", nil)
	}
	if strings.TrimSpace(r.Email) == "" {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "email cannot be empty", nil)
	}
	if _, err := user.NormalizeEmail(r.Email); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "email must be a valid email address", nil)
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "rating must be between 1 and 5", nil)
	}
	return nil
}
