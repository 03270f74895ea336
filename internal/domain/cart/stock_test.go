package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockErrors(t *testing.T) {
	within := line(2, 500, 0, 0)
	within.AvailableStock = decimal.NewFromInt(5)

	exceeding := line(6, 500, 0, 0)
	exceeding.AvailableStock = decimal.NewFromInt(5)

	atLimit := line(5, 500, 0, 0)
	atLimit.AvailableStock = decimal.NewFromInt(5)

	t.Run("no items means no errors", func(t *testing.T) {
		assert.Empty(t, StockErrors(nil))
	})

	t.Run("only exceeding lines are flagged", func(t *testing.T) {
		offenders := StockErrors([]LineItem{within, exceeding, atLimit})
		require.Len(t, offenders, 1)
		assert.Equal(t, exceeding.ProductID, offenders[0].ProductID)
	})

	t.Run("quantity equal to stock is fine", func(t *testing.T) {
		assert.False(t, atLimit.ExceedsStock())
	})

	t.Run("fractional comparison", func(t *testing.T) {
		li := line(1, 100, 0, 0)
		li.Quantity = decimal.RequireFromString("2.501")
		li.AvailableStock = decimal.RequireFromString("2.5")
		assert.True(t, li.ExceedsStock())
	})
}
