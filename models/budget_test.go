package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetRollups(t *testing.T) {
	b := &Budget{Categories: []BudgetCategory{
		{Name: "Development", AllocatedAmount: 1000, SpentAmount: 200},
		{Name: "Marketing", AllocatedAmount: 500, SpentAmount: 600},
	}}
	assert.Equal(t, 1500.0, b.TotalAllocated())
	assert.Equal(t, 800.0, b.TotalSpent())
	assert.InDelta(t, 53.3333, b.Utilization(), 1e-3)

	assert.Equal(t, 0.0, (&Budget{}).Utilization(), "no allocation reports zero")
}

func TestBudgetCategoryUtilizationUnclamped(t *testing.T) {
	c := &BudgetCategory{AllocatedAmount: 500, SpentAmount: 600}
	assert.InDelta(t, 120.0, c.Utilization(), 1e-9)

	c = &BudgetCategory{AllocatedAmount: 0, SpentAmount: 100}
	assert.Equal(t, 0.0, c.Utilization())
}

func TestTransactionLedgerDelta(t *testing.T) {
	tx := &BudgetTransaction{Type: TransactionExpense, Amount: 150}
	assert.Equal(t, 150.0, tx.LedgerDelta())

	tx = &BudgetTransaction{Type: TransactionIncome, Amount: 50}
	assert.Equal(t, -50.0, tx.LedgerDelta())
}
