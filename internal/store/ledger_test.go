package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemVariance(t *testing.T) {
	budget := decimal.RequireFromString("1000.00")

	t.Run("spent defaults to zero when omitted", func(t *testing.T) {
		spent, variance := ItemVariance(budget, nil)

		assert.True(t, spent.IsZero())
		assert.True(t, variance.Equal(budget))
	})

	t.Run("variance is budget minus spent", func(t *testing.T) {
		supplied := decimal.RequireFromString("250.00")
		spent, variance := ItemVariance(budget, &supplied)

		assert.True(t, spent.Equal(supplied))
		assert.True(t, variance.Equal(decimal.RequireFromString("750.00")))
	})

	t.Run("overspend goes negative", func(t *testing.T) {
		supplied := decimal.RequireFromString("1100.00")
		_, variance := ItemVariance(budget, &supplied)

		assert.True(t, variance.Equal(decimal.RequireFromString("-100.00")))
	})
}

func TestMergeProjectBudget(t *testing.T) {
	storedTotal := decimal.RequireFromString("5000.00")
	storedSpent := decimal.RequireFromString("2000.00")

	t.Run("updating spent alone keeps the stored total", func(t *testing.T) {
		newSpent := decimal.RequireFromString("3000.00")
		total, spent, variance := MergeProjectBudget(storedTotal, storedSpent, nil, &newSpent)

		assert.True(t, total.Equal(storedTotal))
		assert.True(t, spent.Equal(newSpent))
		assert.True(t, variance.Equal(decimal.RequireFromString("2000.00")))
	})

	t.Run("updating total alone keeps the stored spent", func(t *testing.T) {
		newTotal := decimal.RequireFromString("8000.00")
		total, spent, variance := MergeProjectBudget(storedTotal, storedSpent, &newTotal, nil)

		assert.True(t, total.Equal(newTotal))
		assert.True(t, spent.Equal(storedSpent))
		assert.True(t, variance.Equal(decimal.RequireFromString("6000.00")))
	})

	t.Run("updating both uses both new values", func(t *testing.T) {
		newTotal := decimal.RequireFromString("10000.00")
		newSpent := decimal.RequireFromString("9999.00")
		_, _, variance := MergeProjectBudget(storedTotal, storedSpent, &newTotal, &newSpent)

		assert.True(t, variance.Equal(decimal.RequireFromString("1.00")))
	})

	t.Run("no budget fields keeps everything stored", func(t *testing.T) {
		total, spent, variance := MergeProjectBudget(storedTotal, storedSpent, nil, nil)

		assert.True(t, total.Equal(storedTotal))
		assert.True(t, spent.Equal(storedSpent))
		assert.True(t, variance.Equal(decimal.RequireFromString("3000.00")))
	})
}
