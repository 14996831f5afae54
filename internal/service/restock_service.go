package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/tokostock/backend-go/internal/cache"
	"github.com/tokostock/backend-go/internal/domain"
	"github.com/tokostock/backend-go/internal/repository"
	"github.com/tokostock/backend-go/internal/restock"
)

// RestockService derives restock alerts from current stock and the latest
// segment labels. Alerts are never persisted; the cache only shortcuts the
// recomputation between runs.
type RestockService struct {
	products repository.ProductRepository
	cache    cache.RestockCache
}

func NewRestockService(products repository.ProductRepository, cacheImpl cache.RestockCache) *RestockService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopRestockCache()
	}
	return &RestockService{products: products, cache: cacheImpl}
}

func (s *RestockService) GetAlerts(ctx context.Context, tenantID int64) ([]domain.RestockAlert, error) {
	if alerts, ok, err := s.cache.GetAlerts(ctx, tenantID); err == nil && ok {
		return alerts, nil
	} else if err != nil {
		log.Warn().Err(err).Int64("tenant_id", tenantID).Msg("restock: cache get failed")
	}

	products, err := s.products.GetRestockCandidates(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	alerts := restock.Evaluate(products)

	if err := s.cache.SetAlerts(ctx, tenantID, alerts); err != nil {
		log.Warn().Err(err).Int64("tenant_id", tenantID).Msg("restock: cache set failed")
	}

	return alerts, nil
}
