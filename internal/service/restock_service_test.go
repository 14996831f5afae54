package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokostock/backend-go/internal/domain"
)

type stubRestockCache struct {
	alerts []domain.RestockAlert
	hit    bool
	stored []domain.RestockAlert
}

func (c *stubRestockCache) GetAlerts(ctx context.Context, tenantID int64) ([]domain.RestockAlert, bool, error) {
	return c.alerts, c.hit, nil
}

func (c *stubRestockCache) SetAlerts(ctx context.Context, tenantID int64, alerts []domain.RestockAlert) error {
	c.stored = alerts
	return nil
}

func (c *stubRestockCache) Invalidate(ctx context.Context, tenantID int64) error {
	return nil
}

func TestRestockAlertsComputedFromStore(t *testing.T) {
	products := &fakeProductRepo{products: []domain.ProductStock{
		{ProductID: 1, Name: "Burger Original", Stock: 3, Label: domain.LabelHigh},
		{ProductID: 2, Name: "Iced Tea", Stock: 80, Label: domain.LabelLow},
		{ProductID: 3, Name: "Milkshake", Stock: 7, Label: domain.LabelMedium},
	}}
	cache := &stubRestockCache{}
	svc := NewRestockService(products, cache)

	alerts, err := svc.GetAlerts(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, int64(1), alerts[0].ProductID)
	assert.Equal(t, domain.PriorityUrgent, alerts[0].Priority)
	assert.Equal(t, int64(3), alerts[1].ProductID)
	assert.Equal(t, domain.PriorityMedium, alerts[1].Priority)

	assert.Equal(t, alerts, cache.stored, "computed alerts should be cached")
}

func TestRestockAlertsCacheHitSkipsStore(t *testing.T) {
	cached := []domain.RestockAlert{
		{ProductID: 9, CurrentStock: 1, Priority: domain.PriorityLow, Message: "Stock nearly depleted"},
	}
	cache := &stubRestockCache{alerts: cached, hit: true}
	svc := NewRestockService(&fakeProductRepo{}, cache)

	alerts, err := svc.GetAlerts(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, cached, alerts)
	assert.Nil(t, cache.stored)
}
