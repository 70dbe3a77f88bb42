package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType classifies a category as income or expense
type CategoryType string

// Category types
const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// IsValid reports whether the type is one of the known category types
func (t CategoryType) IsValid() bool {
	return t == CategoryIncome || t == CategoryExpense
}

// Category is a ledger category. The pipeline only reads categories.
type Category struct {
	ID   uuid.UUID
	Name string
	Type CategoryType
	Icon string
}

// SignedAmount applies the category sign rule to the magnitude of amount:
// expenses are stored negative, income positive.
func (c *Category) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	magnitude := amount.Abs()
	if c.Type == CategoryExpense {
		return magnitude.Neg()
	}
	return magnitude
}
