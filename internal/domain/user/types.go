package user

import "time"

// Config drives account handling.
type Config struct {
	PasswordCost int
}

// User represents a persisted account.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// View trims sensitive fields.
type View struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Changes lists the columns an update may touch. Nil fields are left alone.
type Changes struct {
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update would be a no-op.
func (c Changes) IsEmpty() bool {
	return c.Email == nil && c.PasswordHash == nil
}

// CreateRequest captures the registration payload.
type CreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateRequest carries a partial user update.
type UpdateRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

func toView(u User) View {
	return View{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
