// backend-go/internal/repository/postgres/run_repository.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tokostock/backend-go/internal/domain"
	"github.com/tokostock/backend-go/internal/repository"
)

type runRepository struct {
	db *sqlx.DB
}

func NewRunRepository(db *sqlx.DB) repository.RunRepository {
	return &runRepository{db: db}
}

func (r *runRepository) Create(ctx context.Context, run *domain.SegmentationRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	run.Status = domain.RunStatusRunning

	query := `
        INSERT INTO segmentation_runs (id, tenant_id, product_count, status, started_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	if _, err := r.db.ExecContext(ctx, query,
		run.ID, run.TenantID, run.ProductCount, run.Status, run.StartedAt); err != nil {
		return fmt.Errorf("error creating segmentation run: %w", err)
	}
	return nil
}

func (r *runRepository) Complete(ctx context.Context, run *domain.SegmentationRun) error {
	now := time.Now()
	run.Status = domain.RunStatusCompleted
	run.CompletedAt = &now

	query := `
        UPDATE segmentation_runs
        SET status = $1, product_count = $2, high_count = $3, medium_count = $4,
            low_count = $5, completed_at = $6
        WHERE id = $7
    `
	if _, err := r.db.ExecContext(ctx, query,
		run.Status, run.ProductCount, run.HighCount, run.MediumCount,
		run.LowCount, run.CompletedAt, run.ID); err != nil {
		return fmt.Errorf("error completing segmentation run: %w", err)
	}
	return nil
}

func (r *runRepository) Fail(ctx context.Context, runID uuid.UUID, message string) error {
	query := `
        UPDATE segmentation_runs
        SET status = $1, error_message = $2, completed_at = $3
        WHERE id = $4
    `
	if _, err := r.db.ExecContext(ctx, query,
		domain.RunStatusFailed, message, time.Now(), runID); err != nil {
		return fmt.Errorf("error failing segmentation run: %w", err)
	}
	return nil
}

func (r *runRepository) ListByTenant(ctx context.Context, tenantID int64, limit int) ([]domain.SegmentationRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
        SELECT id, tenant_id, product_count, high_count, medium_count, low_count,
               status, COALESCE(error_message, '') AS error_message,
               started_at, completed_at
        FROM segmentation_runs
        WHERE tenant_id = $1
        ORDER BY started_at DESC
        LIMIT $2
    `

	var runs []domain.SegmentationRun
	if err := r.db.SelectContext(ctx, &runs, query, tenantID, limit); err != nil {
		return nil, fmt.Errorf("error listing segmentation runs: %w", err)
	}
	return runs, nil
}
