package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokostock/backend-go/internal/api/middleware"
	"github.com/tokostock/backend-go/internal/domain"
	"github.com/tokostock/backend-go/internal/service"
)

type stubSalesRepo struct {
	aggregates []domain.SalesAggregate
}

func (s *stubSalesRepo) GetSalesAggregates(ctx context.Context, tenantID int64) ([]domain.SalesAggregate, error) {
	return s.aggregates, nil
}

type stubProductRepo struct {
	products []domain.ProductStock
	saved    map[int64]domain.SegmentLabel
}

func (s *stubProductRepo) UpdateSegments(ctx context.Context, tenantID int64, labels map[int64]domain.SegmentLabel) error {
	s.saved = labels
	return nil
}

func (s *stubProductRepo) GetRestockCandidates(ctx context.Context, tenantID int64) ([]domain.ProductStock, error) {
	return s.products, nil
}

type stubRunRepo struct{}

func (s *stubRunRepo) Create(ctx context.Context, run *domain.SegmentationRun) error {
	run.ID = uuid.New()
	return nil
}

func (s *stubRunRepo) Complete(ctx context.Context, run *domain.SegmentationRun) error { return nil }

func (s *stubRunRepo) Fail(ctx context.Context, runID uuid.UUID, message string) error { return nil }

func (s *stubRunRepo) ListByTenant(ctx context.Context, tenantID int64, limit int) ([]domain.SegmentationRun, error) {
	return []domain.SegmentationRun{{ID: uuid.New(), TenantID: tenantID, Status: domain.RunStatusCompleted}}, nil
}

func newTestRouter(sales *stubSalesRepo, products *stubProductRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	services := &Services{
		SegmentationService: service.NewSegmentationService(sales, products, &stubRunRepo{}, nil),
		RestockService:      service.NewRestockService(products, nil),
	}
	return NewRouter(services, nil)
}

func threeTierAggregates() []domain.SalesAggregate {
	return []domain.SalesAggregate{
		{ProductID: 1, QuantitySold: 100, Revenue: 1_000_000, TransactionFrequency: 50},
		{ProductID: 2, QuantitySold: 50, Revenue: 400_000, TransactionFrequency: 20},
		{ProductID: 3, QuantitySold: 5, Revenue: 50_000, TransactionFrequency: 2},
	}
}

func TestRunSegmentationEndpoint(t *testing.T) {
	sales := &stubSalesRepo{aggregates: threeTierAggregates()}
	products := &stubProductRepo{}
	router := newTestRouter(sales, products)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/run", nil)
	req.Header.Set(middleware.TenantHeader, "7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string            `json:"message"`
		Summary domain.RunSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Clustering completed", body.Message)
	assert.Equal(t, 3, body.Summary.ProductCount)
	assert.Len(t, products.saved, 3)
}

func TestRunSegmentationInsufficientData(t *testing.T) {
	sales := &stubSalesRepo{aggregates: threeTierAggregates()[:1]}
	router := newTestRouter(sales, &stubProductRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/run", nil)
	req.Header.Set(middleware.TenantHeader, "7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not enough sales data")
}

func TestTenantHeaderRequired(t *testing.T) {
	router := newTestRouter(&stubSalesRepo{}, &stubProductRepo{})

	for _, tt := range []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"non-numeric", "abc"},
		{"negative", "-3"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/restock/alerts", nil)
			if tt.header != "" {
				req.Header.Set(middleware.TenantHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRestockAlertsEndpoint(t *testing.T) {
	products := &stubProductRepo{products: []domain.ProductStock{
		{ProductID: 1, Name: "Burger Original", Stock: 3, Label: domain.LabelHigh},
		{ProductID: 2, Name: "Iced Tea", Stock: 2, Label: domain.LabelLow},
		{ProductID: 3, Name: "Milkshake", Stock: 50, Label: domain.LabelMedium},
	}}
	router := newTestRouter(&stubSalesRepo{}, products)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/restock/alerts", nil)
	req.Header.Set(middleware.TenantHeader, "7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Alerts []domain.RestockAlert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Alerts, 2)
	assert.Equal(t, int64(2), body.Alerts[0].ProductID)
	assert.Equal(t, domain.PriorityLow, body.Alerts[0].Priority)
	assert.Equal(t, int64(1), body.Alerts[1].ProductID)
	assert.Equal(t, domain.PriorityUrgent, body.Alerts[1].Priority)
}

func TestListRunsEndpoint(t *testing.T) {
	router := newTestRouter(&stubSalesRepo{}, &stubProductRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/runs", nil)
	req.Header.Set(middleware.TenantHeader, "7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), domain.RunStatusCompleted)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubSalesRepo{}, &stubProductRepo{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
