package store

import "github.com/shopspring/decimal"

// ItemVariance resolves the spent amount (defaulting to zero when
// omitted) and the variance of a budget item at creation time.
func ItemVariance(budgetAmount decimal.Decimal, spentAmount *decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	spent := decimal.Zero

	if spentAmount != nil {
		spent = *spentAmount
	}

	return spent, budgetAmount.Sub(spent)
}

// MergeProjectBudget applies a partial budget update on top of the
// stored values. A request that supplies only one side keeps the other
// side as stored, and the variance is always recomputed from the
// merged pair.
func MergeProjectBudget(storedTotal, storedSpent decimal.Decimal, newTotal, newSpent *decimal.Decimal) (total, spent, variance decimal.Decimal) {
	total = storedTotal
	spent = storedSpent

	if newTotal != nil {
		total = *newTotal
	}

	if newSpent != nil {
		spent = *newSpent
	}

	return total, spent, total.Sub(spent)
}
