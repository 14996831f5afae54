package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tokostock/backend-go/internal/config"
	"github.com/tokostock/backend-go/internal/domain"
)

const restockAlertsKeyPrefix = "restock:alerts"

// RestockCache caches the computed restock alert list per tenant. Entries are
// short-lived and invalidated whenever a segmentation run rewrites labels.
type RestockCache interface {
	GetAlerts(ctx context.Context, tenantID int64) ([]domain.RestockAlert, bool, error)
	SetAlerts(ctx context.Context, tenantID int64, alerts []domain.RestockAlert) error
	Invalidate(ctx context.Context, tenantID int64) error
}

type redisRestockCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopRestockCache struct{}

func NewRestockCache(cfg config.CacheConfig) (RestockCache, error) {
	if !cfg.Enabled {
		return &noopRestockCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisRestockCache{client: client, ttl: ttl}, nil
}

func NewNoopRestockCache() RestockCache {
	return &noopRestockCache{}
}

// NewRedisRestockCache wraps an existing client, mainly for tests.
func NewRedisRestockCache(client *redis.Client, ttl time.Duration) RestockCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &redisRestockCache{client: client, ttl: ttl}
}

func (c *redisRestockCache) GetAlerts(ctx context.Context, tenantID int64) ([]domain.RestockAlert, bool, error) {
	payload, err := c.client.Get(ctx, restockAlertsKey(tenantID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var alerts []domain.RestockAlert
	if err := json.Unmarshal(payload, &alerts); err != nil {
		return nil, false, fmt.Errorf("decode restock alerts cache: %w", err)
	}
	return alerts, true, nil
}

func (c *redisRestockCache) SetAlerts(ctx context.Context, tenantID int64, alerts []domain.RestockAlert) error {
	payload, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("encode restock alerts cache: %w", err)
	}

	if err := c.client.Set(ctx, restockAlertsKey(tenantID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisRestockCache) Invalidate(ctx context.Context, tenantID int64) error {
	return c.client.Del(ctx, restockAlertsKey(tenantID)).Err()
}

func (n *noopRestockCache) GetAlerts(ctx context.Context, tenantID int64) ([]domain.RestockAlert, bool, error) {
	return nil, false, nil
}

func (n *noopRestockCache) SetAlerts(ctx context.Context, tenantID int64, alerts []domain.RestockAlert) error {
	return nil
}

func (n *noopRestockCache) Invalidate(ctx context.Context, tenantID int64) error {
	return nil
}

func restockAlertsKey(tenantID int64) string {
	return fmt.Sprintf("%s:%d", restockAlertsKeyPrefix, tenantID)
}
