package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 20
)

// Validate checks the registration payload before it reaches the service.
func (r CreateRequest) Validate() error {
	if _, err := NormalizeEmail(r.Email); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "email must be a valid email address", err)
	}
	if err := validatePassword(r.Password); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), nil)
	}
	return nil
}

// Validate checks every field present in the partial update.
func (r UpdateRequest) Validate() error {
	if r.Email != nil {
		if _, err := NormalizeEmail(*r.Email); err != nil {
			return apperrors.Wrap(apperrors.CodeInvalidInput, "email must be a valid email address", err)
		}
	}
	if r.Password != nil {
		if err := validatePassword(*r.Password); err != nil {
			return apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), nil)
		}
	}
	return nil
}

// NormalizeEmail lower-cases and validates an address.
func NormalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(strings.ToLower(raw))
	if email == "" {
		return "", errors.New("email cannot be empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", err
	}
	// ParseAddress accepts "Name <a@b>"; only bare addresses are valid here.
	if addr.Address != email {
		return "", errors.New("email must be a bare address")
	}
	return email, nil
}

func validatePassword(password string) error {
	n := len([]rune(password))
	if n < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	if n > maxPasswordLen {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLen)
	}
	return nil
}
