// backend-go/internal/domain/models.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// SalesAggregate is one product's summed sales signal for a tenant over the
// analysis window: total units sold, total revenue (sum of subtotals) and the
// number of distinct transactions the product appeared in.
type SalesAggregate struct {
	ProductID            int64   `json:"product_id" db:"product_id"`
	QuantitySold         int64   `json:"quantity_sold" db:"quantity_sold"`
	Revenue              float64 `json:"revenue" db:"revenue"`
	TransactionFrequency int64   `json:"transaction_frequency" db:"transaction_frequency"`
}

// HasSignal reports whether the aggregate carries any sales signal at all.
func (a SalesAggregate) HasSignal() bool {
	return a.QuantitySold > 0 || a.Revenue > 0 || a.TransactionFrequency > 0
}

// ProductStock is the current stock snapshot the restock policy evaluates.
// Label is empty for products that have never been through segmentation.
type ProductStock struct {
	ProductID int64        `json:"product_id" db:"product_id"`
	Name      string       `json:"name" db:"name"`
	Stock     int          `json:"stock" db:"stock"`
	Label     SegmentLabel `json:"label" db:"segment_label"`
}

// RestockAlert is a derived restock recommendation. It is recomputed from the
// latest stock level and segment label on every query and never persisted.
type RestockAlert struct {
	ProductID    int64         `json:"product_id"`
	Name         string        `json:"name"`
	CurrentStock int           `json:"current_stock"`
	Label        SegmentLabel  `json:"label"`
	Priority     AlertPriority `json:"priority"`
	Message      string        `json:"message"`
}

// SegmentationRun records one segmentation batch for a tenant.
type SegmentationRun struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	TenantID     int64      `json:"tenant_id" db:"tenant_id"`
	ProductCount int        `json:"product_count" db:"product_count"`
	HighCount    int        `json:"high_count" db:"high_count"`
	MediumCount  int        `json:"medium_count" db:"medium_count"`
	LowCount     int        `json:"low_count" db:"low_count"`
	Status       string     `json:"status" db:"status"`
	ErrorMessage string     `json:"error_message,omitempty" db:"error_message"`
	StartedAt    time.Time  `json:"started_at" db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// Segmentation run statuses.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// RunSummary is the response payload for a completed segmentation trigger.
type RunSummary struct {
	RunID        uuid.UUID `json:"run_id"`
	TenantID     int64     `json:"tenant_id"`
	ProductCount int       `json:"product_count"`
	HighCount    int       `json:"high_count"`
	MediumCount  int       `json:"medium_count"`
	LowCount     int       `json:"low_count"`
}
