package user

import "context"

// Repository abstracts user persistence.
type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (User, error)
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	Update(ctx context.Context, id int64, changes Changes) (User, error)
	Delete(ctx context.Context, id int64) error
}
