// backend-go/internal/service/segmentation_service.go
package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tokostock/backend-go/internal/cache"
	"github.com/tokostock/backend-go/internal/domain"
	"github.com/tokostock/backend-go/internal/repository"
	"github.com/tokostock/backend-go/internal/segmentation"
)

// SegmentationService runs the sales-based segmentation batch for a tenant:
// fetch aggregates, validate, cluster, persist labels, record the run.
type SegmentationService struct {
	sales    repository.SalesRepository
	products repository.ProductRepository
	runs     repository.RunRepository
	cache    cache.RestockCache
}

func NewSegmentationService(
	sales repository.SalesRepository,
	products repository.ProductRepository,
	runs repository.RunRepository,
	cacheImpl cache.RestockCache,
) *SegmentationService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopRestockCache()
	}
	return &SegmentationService{
		sales:    sales,
		products: products,
		runs:     runs,
		cache:    cacheImpl,
	}
}

// Run executes one synchronous segmentation batch for the tenant. Label
// persistence is all-or-nothing; validation failures are returned before any
// state changes. Restock alerts are invalidated on success because labels
// feed directly into them.
func (s *SegmentationService) Run(ctx context.Context, tenantID int64) (*domain.RunSummary, error) {
	aggregates, err := s.sales.GetSalesAggregates(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("fetching sales aggregates: %w", err)
	}

	prepared, err := segmentation.Prepare(aggregates)
	if err != nil {
		return nil, err
	}

	run := &domain.SegmentationRun{
		TenantID:     tenantID,
		ProductCount: len(prepared),
	}
	if err := s.runs.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("creating segmentation run: %w", err)
	}

	labels := segmentation.Segment(prepared)

	if err := s.products.UpdateSegments(ctx, tenantID, labels); err != nil {
		if failErr := s.runs.Fail(ctx, run.ID, err.Error()); failErr != nil {
			log.Warn().Err(failErr).Str("run_id", run.ID.String()).Msg("segmentation: failed to mark run failed")
		}
		return nil, fmt.Errorf("persisting segment labels: %w", err)
	}

	for _, label := range labels {
		switch label {
		case domain.LabelHigh:
			run.HighCount++
		case domain.LabelMedium:
			run.MediumCount++
		case domain.LabelLow:
			run.LowCount++
		}
	}

	if err := s.runs.Complete(ctx, run); err != nil {
		log.Warn().Err(err).Str("run_id", run.ID.String()).Msg("segmentation: failed to mark run completed")
	}

	if err := s.cache.Invalidate(ctx, tenantID); err != nil {
		log.Warn().Err(err).Int64("tenant_id", tenantID).Msg("segmentation: restock cache invalidation failed")
	}

	log.Info().
		Int64("tenant_id", tenantID).
		Str("run_id", run.ID.String()).
		Int("products", run.ProductCount).
		Int("high", run.HighCount).
		Int("medium", run.MediumCount).
		Int("low", run.LowCount).
		Msg("segmentation run completed")

	return &domain.RunSummary{
		RunID:        run.ID,
		TenantID:     tenantID,
		ProductCount: run.ProductCount,
		HighCount:    run.HighCount,
		MediumCount:  run.MediumCount,
		LowCount:     run.LowCount,
	}, nil
}

// ListRuns returns the tenant's most recent segmentation runs.
func (s *SegmentationService) ListRuns(ctx context.Context, tenantID int64, limit int) ([]domain.SegmentationRun, error) {
	return s.runs.ListByTenant(ctx, tenantID, limit)
}
