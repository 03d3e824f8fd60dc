package reviewrepo

import (
	"context"
	"time"

	"github.com/yanqian/product-reviews/internal/domain/review"
	"github.com/yanqian/product-reviews/internal/infra/postgres"
)

// PostgresRepository persists reviews in Postgres.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a review row. A foreign key violation means the product or
// user was deleted after the service checked it.
func (r *PostgresRepository) Create(ctx context.Context, in review.NewReview) (review.Review, error) {
	var (
		out     review.Review
		created time.Time
		updated time.Time
	)
	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews (comment, rating, product_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, comment, rating, product_id, user_id, created_at, updated_at
	`, in.Comment, in.Rating, in.ProductID, in.UserID).Scan(
		&out.ID, &out.Comment, &out.Rating, &out.ProductID, &out.UserID, &created, &updated,
	)
	if err != nil {
		if postgres.IsCode(err, postgres.ForeignKeyViolation) {
			return review.Review{}, review.ErrReferenceMissing
		}
		return review.Review{}, err
	}
	out.CreatedAt = created.UTC()
	out.UpdatedAt = updated.UTC()
	return out, nil
}

// ListByProduct returns reviews joined with their authors in creation order.
func (r *PostgresRepository) ListByProduct(ctx context.Context, productID int64) ([]review.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.comment, r.rating, r.product_id, r.user_id, r.created_at, r.updated_at, u.email
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []review.Review
	for rows.Next() {
		var (
			rv      review.Review
			created time.Time
			updated time.Time
			email   string
		)
		if err := rows.Scan(&rv.ID, &rv.Comment, &rv.Rating, &rv.ProductID, &rv.UserID, &created, &updated, &email); err != nil {
			return nil, err
		}
		rv.CreatedAt = created.UTC()
		rv.UpdatedAt = updated.UTC()
		rv.User = &review.Author{ID: rv.UserID, Email: email}
		out = append(out, rv)
	}
	return out, rows.Err()
}

var _ review.Repository = (*PostgresRepository)(nil)
