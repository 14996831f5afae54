// backend-go/internal/repository/postgres/sales_repository.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/tokostock/backend-go/internal/domain"
	"github.com/tokostock/backend-go/internal/repository"
)

type salesRepository struct {
	db *sqlx.DB
}

func NewSalesRepository(db *sqlx.DB) repository.SalesRepository {
	return &salesRepository{db: db}
}

// GetSalesAggregates sums quantity and subtotal per product and counts the
// distinct transactions each product appeared in, for one tenant. Ordered by
// product_id so the segmentation engine always sees the same input order.
func (r *salesRepository) GetSalesAggregates(ctx context.Context, tenantID int64) ([]domain.SalesAggregate, error) {
	query := `
        SELECT
            ti.product_id,
            COALESCE(SUM(ti.quantity), 0) AS quantity_sold,
            COALESCE(SUM(ti.subtotal), 0) AS revenue,
            COUNT(DISTINCT ti.transaction_id) AS transaction_frequency
        FROM transaction_items ti
        JOIN transactions t ON t.id = ti.transaction_id
        WHERE t.owner_id = $1
        GROUP BY ti.product_id
        ORDER BY ti.product_id
    `

	var aggregates []domain.SalesAggregate
	if err := r.db.SelectContext(ctx, &aggregates, query, tenantID); err != nil {
		return nil, fmt.Errorf("error getting sales aggregates: %w", err)
	}

	return aggregates, nil
}
