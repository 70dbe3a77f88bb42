package persistence

import (
	"context"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
)

// MessageRecordRepository stores the raw-message audit trail
type MessageRecordRepository interface {
	// Create stores a message audit record
	//
	// Possible errors:
	// - ErrConstraintViolation: If the user or transaction reference is invalid
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, record *entity.MessageRecord) error
}
