package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategoryTypeIsValid(t *testing.T) {
	assert.True(t, CategoryIncome.IsValid())
	assert.True(t, CategoryExpense.IsValid())
	assert.False(t, CategoryType("transfer").IsValid())
	assert.False(t, CategoryType("").IsValid())
}

func TestCategorySignedAmount(t *testing.T) {
	expense := &Category{Name: "Makanan", Type: CategoryExpense}
	income := &Category{Name: "Gaji", Type: CategoryIncome}

	tests := []struct {
		name     string
		category *Category
		amount   string
		expected string
	}{
		{"Expense positive input", expense, "50000", "-50000"},
		{"Expense negative input", expense, "-50000", "-50000"},
		{"Income positive input", income, "1000000", "1000000"},
		{"Income negative input", income, "-1000000", "1000000"},
		{"Zero expense", expense, "0", "0"},
		{"Fractional expense", expense, "12.5", "-12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed := tt.category.SignedAmount(decimal.RequireFromString(tt.amount))
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(signed), "got %s", signed)
		})
	}
}
