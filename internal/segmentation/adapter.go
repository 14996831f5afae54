package segmentation

import (
	"errors"
	"fmt"

	"github.com/tokostock/backend-go/internal/domain"
)

// MinProducts is the smallest number of distinct products with sales signal
// required for a meaningful 3-way clustering.
const MinProducts = 3

// ErrInsufficientData is returned when a tenant has fewer than MinProducts
// distinct products with any sales signal. Surfaced to the caller as a
// user-visible "not enough data" condition, never retried automatically.
var ErrInsufficientData = errors.New("not enough sales data: need transactions for at least 3 distinct products")

// Prepare validates and shapes one tenant's aggregates before clustering.
// It drops rows with no sales signal (they contribute nothing), rejects
// duplicate product ids and negative values, and enforces the MinProducts
// precondition. Input order is preserved for the rows that survive.
func Prepare(aggregates []domain.SalesAggregate) ([]domain.SalesAggregate, error) {
	if len(aggregates) == 0 {
		return nil, ErrInsufficientData
	}

	seen := make(map[int64]struct{}, len(aggregates))
	out := make([]domain.SalesAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		if _, dup := seen[agg.ProductID]; dup {
			return nil, fmt.Errorf("duplicate product id %d in aggregates", agg.ProductID)
		}
		seen[agg.ProductID] = struct{}{}

		if agg.QuantitySold < 0 || agg.Revenue < 0 || agg.TransactionFrequency < 0 {
			return nil, fmt.Errorf("negative sales aggregate for product %d", agg.ProductID)
		}

		if !agg.HasSignal() {
			continue
		}
		out = append(out, agg)
	}

	if len(out) < MinProducts {
		return nil, ErrInsufficientData
	}

	return out, nil
}
