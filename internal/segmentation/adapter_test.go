package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokostock/backend-go/internal/domain"
)

func TestPrepareAcceptsValidInput(t *testing.T) {
	aggregates := []domain.SalesAggregate{
		{ProductID: 1, QuantitySold: 10, Revenue: 100, TransactionFrequency: 5},
		{ProductID: 2, QuantitySold: 20, Revenue: 200, TransactionFrequency: 8},
		{ProductID: 3, QuantitySold: 30, Revenue: 300, TransactionFrequency: 12},
	}

	prepared, err := Prepare(aggregates)

	require.NoError(t, err)
	assert.Equal(t, aggregates, prepared)
}

func TestPrepareEmptyInput(t *testing.T) {
	_, err := Prepare(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Prepare([]domain.SalesAggregate{})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestPrepareTooFewProducts(t *testing.T) {
	aggregates := []domain.SalesAggregate{
		{ProductID: 1, QuantitySold: 10, Revenue: 100, TransactionFrequency: 5},
		{ProductID: 2, QuantitySold: 20, Revenue: 200, TransactionFrequency: 8},
	}

	_, err := Prepare(aggregates)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestPrepareDropsZeroSignalRows(t *testing.T) {
	aggregates := []domain.SalesAggregate{
		{ProductID: 1, QuantitySold: 10, Revenue: 100, TransactionFrequency: 5},
		{ProductID: 2},
		{ProductID: 3, QuantitySold: 20, Revenue: 200, TransactionFrequency: 8},
		{ProductID: 4, QuantitySold: 30, Revenue: 300, TransactionFrequency: 12},
	}

	prepared, err := Prepare(aggregates)

	require.NoError(t, err)
	require.Len(t, prepared, 3)
	for _, agg := range prepared {
		assert.NotEqual(t, int64(2), agg.ProductID)
	}
}

func TestPrepareZeroSignalRowsCountTowardMinimum(t *testing.T) {
	// Three rows, but one has no signal: not enough products left.
	aggregates := []domain.SalesAggregate{
		{ProductID: 1, QuantitySold: 10, Revenue: 100, TransactionFrequency: 5},
		{ProductID: 2},
		{ProductID: 3, QuantitySold: 20, Revenue: 200, TransactionFrequency: 8},
	}

	_, err := Prepare(aggregates)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestPrepareRejectsDuplicateProducts(t *testing.T) {
	aggregates := []domain.SalesAggregate{
		{ProductID: 1, QuantitySold: 10, Revenue: 100, TransactionFrequency: 5},
		{ProductID: 1, QuantitySold: 20, Revenue: 200, TransactionFrequency: 8},
		{ProductID: 3, QuantitySold: 30, Revenue: 300, TransactionFrequency: 12},
	}

	_, err := Prepare(aggregates)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientData)
}

func TestPrepareRejectsNegativeValues(t *testing.T) {
	aggregates := []domain.SalesAggregate{
		{ProductID: 1, QuantitySold: 10, Revenue: 100, TransactionFrequency: 5},
		{ProductID: 2, QuantitySold: -1, Revenue: 200, TransactionFrequency: 8},
		{ProductID: 3, QuantitySold: 30, Revenue: 300, TransactionFrequency: 12},
	}

	_, err := Prepare(aggregates)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientData)
}
