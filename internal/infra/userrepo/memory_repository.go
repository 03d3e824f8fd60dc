package userrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/product-reviews/internal/domain/user"
	"github.com/yanqian/product-reviews/pkg/util"
)

// MemoryRepository provides an in-memory user store for tests/dev.
type MemoryRepository struct {
	mu         sync.RWMutex
	users      map[int64]user.User
	emailIndex map[string]int64
	seq        int64
	onDelete   []func(ctx context.Context, id int64) error
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:      make(map[int64]user.User),
		emailIndex: make(map[string]int64),
	}
}

// Create stores the user record.
func (r *MemoryRepository) Create(_ context.Context, email, passwordHash string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.emailIndex[email]; exists {
		return user.User{}, user.ErrEmailExists
	}
	r.seq++
	now := util.NowUTC()
	u := user.User{
		ID:           r.seq,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u
	r.emailIndex[email] = u.ID
	return u, nil
}

// List returns all users ordered by id.
func (r *MemoryRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByEmail returns a user by email.
func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.emailIndex[email]; ok {
		return r.users[id], true, nil
	}
	return user.User{}, false, nil
}

// GetByID fetches by ID.
func (r *MemoryRepository) GetByID(_ context.Context, id int64) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	return u, ok, nil
}

// Update applies the non-nil changes and returns the new snapshot.
func (r *MemoryRepository) Update(_ context.Context, id int64, changes user.Changes) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if changes.Email != nil && *changes.Email != u.Email {
		if _, taken := r.emailIndex[*changes.Email]; taken {
			return user.User{}, user.ErrEmailExists
		}
		delete(r.emailIndex, u.Email)
		u.Email = *changes.Email
		r.emailIndex[u.Email] = id
	}
	if changes.PasswordHash != nil {
		u.PasswordHash = *changes.PasswordHash
	}
	u.UpdatedAt = util.NowUTC()
	r.users[id] = u
	return u, nil
}

// OnDelete registers fn to run after a user is removed. Dependent stores use
// it to drop rows the Postgres schema removes with ON DELETE CASCADE.
func (r *MemoryRepository) OnDelete(fn func(ctx context.Context, id int64) error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onDelete = append(r.onDelete, fn)
}

// Delete removes the user and runs the registered delete hooks.
func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	u, ok := r.users[id]
	if !ok {
		r.mu.Unlock()
		return user.ErrNotFound
	}
	delete(r.users, id)
	delete(r.emailIndex, u.Email)
	hooks := append([]func(context.Context, int64) error(nil), r.onDelete...)
	r.mu.Unlock()

	for _, fn := range hooks {
		if err := fn(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

var _ user.Repository = (*MemoryRepository)(nil)
