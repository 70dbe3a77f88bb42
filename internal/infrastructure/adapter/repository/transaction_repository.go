package repository

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm/clause"
)

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	database        Database
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(database Database, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		database:        database,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// dateToTime stores a calendar date as midnight UTC
func dateToTime(d civil.Date) time.Time {
	return d.In(time.UTC)
}

func timeToDate(t time.Time) civil.Date {
	return civil.DateOf(t.UTC())
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.Transaction{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		CategoryID:      transaction.CategoryID,
		Amount:          transaction.Amount,
		Description:     transaction.Description,
		TransactionDate: dateToTime(transaction.TransactionDate),
		CreatedAt:       transaction.CreatedAt,
	}

	ctx, cancel := r.database.WithTimeout(ctx)
	defer cancel()

	result := r.database.DB().WithContext(ctx).Omit(clause.Associations).Create(&transactionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"transaction_id": transaction.ID,
			"user_id":        transaction.UserID,
			"error":          result.Error.Error(),
		})
		return r.errorClassifier.Wrap("creating transaction", result.Error)
	}

	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"amount":         transaction.Amount.String(),
	})
	return nil
}

// ListMessageEntries returns the newest message-sourced transactions
func (r *TransactionRepository) ListMessageEntries(ctx context.Context, limit int) ([]*entity.LedgerEntry, error) {
	var messageModels []model.WhatsAppMessage
	ctx, cancel := r.database.WithTimeout(ctx)
	defer cancel()

	result := r.database.DB().WithContext(ctx).
		Preload("Transaction.Category").
		Where("transaction_id IS NOT NULL").
		Order("created_at DESC").
		Limit(limit).
		Find(&messageModels)

	if result.Error != nil {
		r.logger.Error("Failed to list ledger entries", map[string]any{
			"limit": limit,
			"error": result.Error.Error(),
		})
		return nil, r.errorClassifier.Wrap("listing ledger entries", result.Error)
	}

	entries := make([]*entity.LedgerEntry, 0, len(messageModels))
	for i := range messageModels {
		msg := &messageModels[i]
		tx := msg.Transaction
		if tx == nil {
			continue
		}
		entries = append(entries, &entity.LedgerEntry{
			TransactionID:   tx.ID,
			UserID:          tx.UserID,
			Amount:          tx.Amount,
			Description:     tx.Description,
			TransactionDate: timeToDate(tx.TransactionDate),
			CreatedAt:       tx.CreatedAt,
			CategoryName:    tx.Category.Name,
			CategoryType:    entity.CategoryType(tx.Category.Type),
			CategoryIcon:    tx.Category.Icon,
			Message:         msg.Message,
		})
	}

	return entries, nil
}
