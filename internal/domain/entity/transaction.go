package entity

import (
	"time"

	"cloud.google.com/go/civil"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a single signed ledger entry
type Transaction struct {
	ID              uuid.UUID       // Internal identifier
	UserID          uuid.UUID       // Owner of the entry
	CategoryID      uuid.UUID       // Category the entry is booked under
	Amount          decimal.Decimal // Negative for expenses, positive for income
	Description     string          // Free text, may be empty
	TransactionDate civil.Date      // Calendar date of the entry
	CreatedAt       time.Time       // When the entry was created
}

// TransactionOption customizes a new transaction
type TransactionOption func(*Transaction)

// WithTransactionDate books the transaction on a specific date instead of today
func WithTransactionDate(date civil.Date) TransactionOption {
	return func(t *Transaction) {
		t.TransactionDate = date
	}
}

// NewTransaction creates a transaction for user under category. The amount is
// signed from the category type regardless of the sign of magnitude.
func NewTransaction(
	userID uuid.UUID,
	category *Category,
	magnitude decimal.Decimal,
	description string,
	timeProvider coreport.TimeProvider,
	opts ...TransactionOption,
) *Transaction {
	tx := &Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		CategoryID:      category.ID,
		Amount:          category.SignedAmount(magnitude),
		Description:     description,
		TransactionDate: timeProvider.Today(),
		CreatedAt:       timeProvider.Now(),
	}

	for _, opt := range opts {
		opt(tx)
	}

	return tx
}

// IsExpense reports whether the transaction decreases the balance
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// Magnitude returns the absolute amount
func (t *Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}
