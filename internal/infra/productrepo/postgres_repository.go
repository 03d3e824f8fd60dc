package productrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/yanqian/product-reviews/internal/domain/catalog"
	"github.com/yanqian/product-reviews/internal/infra/postgres"
)

const productColumns = "id, name, description, price::float8, created_at, updated_at"

// PostgresRepository persists products in Postgres.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a product row.
func (r *PostgresRepository) Create(ctx context.Context, p catalog.NewProduct) (catalog.Product, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO products (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING `+productColumns, p.Name, p.Description, p.Price)
	return scanProduct(row)
}

// CreateMany inserts products one statement at a time.
func (r *PostgresRepository) CreateMany(ctx context.Context, products []catalog.NewProduct) (int, error) {
	inserted := 0
	for _, p := range products {
		if _, err := r.db.Exec(ctx, `
			INSERT INTO products (name, description, price)
			VALUES ($1, $2, $3)
		`, p.Name, p.Description, p.Price); err != nil {
			return inserted, fmt.Errorf("insert product %q: %w", p.Name, err)
		}
		inserted++
	}
	return inserted, nil
}

// GetByID fetches by primary key.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (catalog.Product, bool, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return catalog.Product{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return catalog.Product{}, false, rows.Err()
	}
	p, err := scanProduct(rows)
	if err != nil {
		return catalog.Product{}, false, err
	}
	return p, true, rows.Err()
}

// Count returns the number of product rows.
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (catalog.Product, error) {
	var (
		p       catalog.Product
		created time.Time
		updated time.Time
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &created, &updated); err != nil {
		return catalog.Product{}, err
	}
	p.CreatedAt = created.UTC()
	p.UpdatedAt = updated.UTC()
	return p, nil
}

var _ catalog.Repository = (*PostgresRepository)(nil)
