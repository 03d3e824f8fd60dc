package user

import "errors"

var (
	// ErrEmailExists indicates a duplicate email address.
	ErrEmailExists = errors.New("email already exists")
	// ErrNotFound is returned by repositories when a mutation targets a missing row.
	ErrNotFound = errors.New("user not found")
)
