// backend-go/internal/repository/postgres/product_repository.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/tokostock/backend-go/internal/domain"
	"github.com/tokostock/backend-go/internal/repository"
)

type productRepository struct {
	db *DB
}

func NewProductRepository(db *DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// NewProductRepositoryFromSqlx builds the repository over a plain sqlx pool,
// for the batch CLIs that manage their own connection.
func NewProductRepositoryFromSqlx(db *sqlx.DB) repository.ProductRepository {
	return &productRepository{db: Wrap(db)}
}

// UpdateSegments persists one run's complete label map. All updates run in a
// single transaction so a failed run never leaves a tenant half-labeled.
func (r *productRepository) UpdateSegments(ctx context.Context, tenantID int64, labels map[int64]domain.SegmentLabel) error {
	if len(labels) == 0 {
		return nil
	}

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PreparexContext(ctx, `
            UPDATE products
            SET segment_label = $1, updated_at = NOW()
            WHERE id = $2 AND owner_id = $3
        `)
		if err != nil {
			return fmt.Errorf("error preparing segment update: %w", err)
		}
		defer stmt.Close()

		for productID, label := range labels {
			if _, err := stmt.ExecContext(ctx, string(label), productID, tenantID); err != nil {
				return fmt.Errorf("error updating segment for product %d: %w", productID, err)
			}
		}
		return nil
	})
}

// GetRestockCandidates returns current stock and latest label for every
// product the tenant owns, lowest stock first.
func (r *productRepository) GetRestockCandidates(ctx context.Context, tenantID int64) ([]domain.ProductStock, error) {
	query := `
        SELECT
            id AS product_id,
            name,
            stock,
            COALESCE(segment_label, '') AS segment_label
        FROM products
        WHERE owner_id = $1
        ORDER BY stock ASC, id ASC
    `

	var products []domain.ProductStock
	if err := r.db.SelectContext(ctx, &products, query, tenantID); err != nil {
		return nil, fmt.Errorf("error getting restock candidates: %w", err)
	}

	return products, nil
}
