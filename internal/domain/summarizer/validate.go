package summarizer

import (
	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

// Validate enforces the mutually exclusive text / productId contract.
func (r Request) Validate() error {
	switch {
	case r.Text == nil && r.ProductID == nil:
		return apperrors.Wrap(apperrors.CodeInvalidInput, `either "text" or "productId" must be provided`, nil)
	case r.Text != nil && r.ProductID != nil:
		return apperrors.Wrap(apperrors.CodeInvalidInput, `only one of "text" or "productId" can be provided`, nil)
	case r.Text != nil && *r.Text == "":
		return apperrors.Wrap(apperrors.CodeInvalidInput, "text cannot be empty", nil)
	case r.ProductID != nil && *r.ProductID < 1:
		return apperrors.Wrap(apperrors.CodeInvalidInput, "productId must be a positive integer", nil)
	}
	return nil
}
