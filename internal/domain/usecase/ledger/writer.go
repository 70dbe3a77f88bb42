package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is everything needed to book one message-sourced transaction
type Entry struct {
	UserID      uuid.UUID
	Category    *entity.Category
	Magnitude   decimal.Decimal
	Description string
	RawMessage  string
	Options     []entity.TransactionOption
}

// Result reports what the writer stored
type Result struct {
	Transaction *entity.Transaction
	Record      *entity.MessageRecord // nil when the audit write failed
}

// Writer persists transactions followed by their message audit records
type Writer struct {
	transactionRepo persistence.TransactionRepository
	messageRepo     persistence.MessageRecordRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewWriter creates a new ledger writer
func NewWriter(
	transactionRepo persistence.TransactionRepository,
	messageRepo persistence.MessageRecordRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Writer {
	return &Writer{
		transactionRepo: transactionRepo,
		messageRepo:     messageRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Write stores the signed transaction and then its audit record.
// A failed transaction insert fails the write and skips the audit record.
// A failed audit insert is logged only; the transaction stays.
func (w *Writer) Write(ctx context.Context, entry Entry) (*Result, error) {
	tx := entity.NewTransaction(entry.UserID, entry.Category, entry.Magnitude, entry.Description, w.timeProvider, entry.Options...)

	if err := w.transactionRepo.Create(ctx, tx); err != nil {
		w.logger.Error("Failed to store transaction", map[string]any{
			"user_id":     entry.UserID.String(),
			"category_id": entry.Category.ID.String(),
			"amount":      tx.Amount.String(),
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrPersistence, err.Error())
	}

	w.logger.Info("Transaction stored", map[string]any{
		"transaction_id":   tx.ID.String(),
		"user_id":          tx.UserID.String(),
		"category":         entry.Category.Name,
		"amount":           tx.Amount.String(),
		"transaction_date": tx.TransactionDate.String(),
	})

	record := entity.NewProcessedMessageRecord(tx, entry.RawMessage, w.timeProvider)
	if err := w.messageRepo.Create(ctx, record); err != nil {
		w.logger.Warn("Transaction stored without message audit record", map[string]any{
			"transaction_id": tx.ID.String(),
			"user_id":        tx.UserID.String(),
			"error":          err.Error(),
		})
		return &Result{Transaction: tx}, nil
	}

	return &Result{Transaction: tx, Record: record}, nil
}
