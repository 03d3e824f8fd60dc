package productrepo

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/product-reviews/internal/domain/catalog"
)

func TestMemoryRepository_CopiesDescription(t *testing.T) {
	repo := NewMemoryRepository()
	desc := "original"

	p, err := repo.Create(context.Background(), catalog.NewProduct{Name: "Lamp", Description: &desc, Price: 20})
	require.NoError(t, err)
	desc = "mutated"

	got, found, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "original", *got.Description)
}

func TestMemoryRepository_CreateManyAndCount(t *testing.T) {
	repo := NewMemoryRepository()

	n, err := repo.CreateMany(context.Background(), []catalog.NewProduct{{Name: "A"}, {Name: "B"}})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func productRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "description", "price", "created_at", "updated_at"})
}

func TestPostgresRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewPostgresRepository(mock)

	now := time.Now().UTC().Truncate(time.Microsecond)
	mock.ExpectQuery("SELECT .+ FROM products WHERE id =").
		WithArgs(int64(1)).
		WillReturnRows(productRows().AddRow(int64(1), "Laptop Pro X", (*string)(nil), 1500.0, now, now))

	p, found, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Laptop Pro X", p.Name)
	require.Nil(t, p.Description)
	require.Equal(t, 1500.0, p.Price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetByIDMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM products WHERE id =").
		WithArgs(int64(2)).
		WillReturnRows(productRows())

	_, found, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.False(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateManyAndCount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO products").
		WithArgs("Mouse", pgxmock.AnyArg(), 45.99).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)

	n, err := repo.CreateMany(context.Background(), []catalog.NewProduct{{Name: "Mouse", Price: 45.99}})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
