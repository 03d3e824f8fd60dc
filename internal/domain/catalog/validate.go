package catalog

import (
	"math"
	"strings"

	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

// MaxPrice is the largest price a NUMERIC(10,2) column holds.
const MaxPrice = 99999999.99

// Validate checks the create payload.
func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "name cannot be empty", nil)
	}
	if r.Price == nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "price is required", nil)
	}
	if math.IsNaN(*r.Price) || math.IsInf(*r.Price, 0) {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "price must be a number", nil)
	}
	if *r.Price < 0 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "price cannot be negative", nil)
	}
	if *r.Price > MaxPrice {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "price cannot exceed 99999999.99", nil)
	}
	return nil
}
