package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

func TestService_CreateRoundsPriceAndCaches(t *testing.T) {
	repo := newMemoryRepo()
	cache := newMapCache()
	svc := NewService(repo, cache, newTestLogger())

	price := 45.999
	desc := "Comfortable mouse"
	p, err := svc.Create(context.Background(), CreateRequest{Name: "  Mouse ", Description: &desc, Price: &price})
	require.NoError(t, err)
	require.Equal(t, "Mouse", p.Name)
	require.Equal(t, 46.0, p.Price)
	require.Contains(t, cache.items, p.ID)
}

func TestService_FindByIDUsesCache(t *testing.T) {
	repo := newMemoryRepo()
	cache := newMapCache()
	svc := NewService(repo, cache, newTestLogger())

	price := 10.0
	created, err := svc.Create(context.Background(), CreateRequest{Name: "Cable", Price: &price})
	require.NoError(t, err)
	repo.gets = 0

	got, err := svc.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
	require.Zero(t, repo.gets)
}

func TestService_FindByIDFallsBackWhenCacheFails(t *testing.T) {
	repo := newMemoryRepo()
	cache := newMapCache()
	cache.err = errors.New("valkey down")
	svc := NewService(repo, cache, newTestLogger())

	p, err := repo.Create(context.Background(), NewProduct{Name: "Desk", Price: 99})
	require.NoError(t, err)

	got, err := svc.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, p, got)
	require.Equal(t, 1, repo.gets)
}

func TestService_FindByIDNotFound(t *testing.T) {
	svc := NewService(newMemoryRepo(), newMapCache(), newTestLogger())

	_, err := svc.FindByID(context.Background(), 404)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	require.Equal(t, "product with ID 404 not found", apperrors.MessageOf(err))
}

func TestService_SeedOnlyWhenEmpty(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, newMapCache(), newTestLogger())

	n, err := svc.Seed(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(defaultProducts), n)

	n, err = svc.Seed(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
	require.Len(t, repo.products, len(defaultProducts))
	require.Equal(t, "Laptop Pro X", repo.products[1].Name)
}

func TestCreateRequestValidate(t *testing.T) {
	neg := -1.0
	ok := 12.5
	ceiling := MaxPrice
	huge := 1e307
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr string
	}{
		{name: "valid", req: CreateRequest{Name: "Gadget", Price: &ok}},
		{name: "blank name", req: CreateRequest{Name: "  ", Price: &ok}, wantErr: "name cannot be empty"},
		{name: "missing price", req: CreateRequest{Name: "Gadget"}, wantErr: "price is required"},
		{name: "negative price", req: CreateRequest{Name: "Gadget", Price: &neg}, wantErr: "price cannot be negative"},
		{name: "price at ceiling", req: CreateRequest{Name: "Gadget", Price: &ceiling}},
		{name: "price overflows column", req: CreateRequest{Name: "Gadget", Price: &huge}, wantErr: "price cannot exceed 99999999.99"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memoryRepo struct {
	products map[int64]Product
	seq      int64
	gets     int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{products: make(map[int64]Product)}
}

func (m *memoryRepo) Create(_ context.Context, p NewProduct) (Product, error) {
	m.seq++
	now := time.Now()
	out := Product{ID: m.seq, Name: p.Name, Description: p.Description, Price: p.Price, CreatedAt: now, UpdatedAt: now}
	m.products[out.ID] = out
	return out, nil
}

func (m *memoryRepo) CreateMany(ctx context.Context, products []NewProduct) (int, error) {
	for _, p := range products {
		if _, err := m.Create(ctx, p); err != nil {
			return 0, err
		}
	}
	return len(products), nil
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (Product, bool, error) {
	m.gets++
	p, ok := m.products[id]
	return p, ok, nil
}

func (m *memoryRepo) Count(_ context.Context) (int, error) {
	return len(m.products), nil
}

type mapCache struct {
	items map[int64]Product
	err   error
}

func newMapCache() *mapCache {
	return &mapCache{items: make(map[int64]Product)}
}

func (c *mapCache) Get(_ context.Context, id int64) (Product, bool, error) {
	if c.err != nil {
		return Product{}, false, c.err
	}
	p, ok := c.items[id]
	return p, ok, nil
}

func (c *mapCache) Set(_ context.Context, p Product) error {
	if c.err != nil {
		return c.err
	}
	c.items[p.ID] = p
	return nil
}
