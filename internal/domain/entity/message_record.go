package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/google/uuid"
)

// MessageRecord is the audit trail entry for an inbound command message
type MessageRecord struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Message       string
	Processed     bool
	TransactionID *uuid.UUID // nil when no transaction was produced
	CreatedAt     time.Time
}

// NewProcessedMessageRecord creates the audit record for a message that produced a transaction
func NewProcessedMessageRecord(tx *Transaction, message string, timeProvider coreport.TimeProvider) *MessageRecord {
	txID := tx.ID
	return &MessageRecord{
		ID:            uuid.New(),
		UserID:        tx.UserID,
		Message:       message,
		Processed:     true,
		TransactionID: &txID,
		CreatedAt:     timeProvider.Now(),
	}
}
