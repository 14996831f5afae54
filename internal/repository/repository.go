// backend-go/internal/repository/repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tokostock/backend-go/internal/domain"
)

// SalesRepository reads per-product sales aggregates from the transactional
// store. Results are always scoped to a single tenant.
type SalesRepository interface {
	// GetSalesAggregates returns one aggregate per product the tenant has
	// sold, ordered by product id so segmentation input order is stable.
	GetSalesAggregates(ctx context.Context, tenantID int64) ([]domain.SalesAggregate, error)
}

// ProductRepository persists segment labels and serves restock snapshots.
type ProductRepository interface {
	// UpdateSegments writes the full label map for a run in one transaction.
	// Either every product gets its label or none do.
	UpdateSegments(ctx context.Context, tenantID int64, labels map[int64]domain.SegmentLabel) error

	// GetRestockCandidates returns the tenant's products with current stock
	// and latest label, ordered by stock ascending then product id.
	GetRestockCandidates(ctx context.Context, tenantID int64) ([]domain.ProductStock, error)
}

// RunRepository tracks segmentation run bookkeeping.
type RunRepository interface {
	Create(ctx context.Context, run *domain.SegmentationRun) error
	Complete(ctx context.Context, run *domain.SegmentationRun) error
	Fail(ctx context.Context, runID uuid.UUID, message string) error
	ListByTenant(ctx context.Context, tenantID int64, limit int) ([]domain.SegmentationRun, error)
}
