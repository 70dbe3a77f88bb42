package persistence

import (
	"context"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
)

// TransactionRepository appends and lists ledger transactions
type TransactionRepository interface {
	// Create stores a new transaction
	//
	// Possible errors:
	// - ErrConstraintViolation: If the user or category reference is invalid
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListMessageEntries returns the newest transactions that carry a message
	// audit record, joined with their category and raw message.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListMessageEntries(ctx context.Context, limit int) ([]*entity.LedgerEntry, error)
}
