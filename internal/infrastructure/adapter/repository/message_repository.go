package repository

import (
	"context"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm/clause"
)

var _ persistence.MessageRecordRepository = (*MessageRecordRepository)(nil)

// MessageRecordRepository stores message audit records in whatsapp_messages
type MessageRecordRepository struct {
	database        Database
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMessageRecordRepository creates a new MessageRecordRepository instance
func NewMessageRecordRepository(database Database, logger coreport.Logger) *MessageRecordRepository {
	return &MessageRecordRepository{
		database:        database,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create stores a message audit record
func (r *MessageRecordRepository) Create(ctx context.Context, record *entity.MessageRecord) error {
	messageModel := model.WhatsAppMessage{
		ID:            record.ID,
		UserID:        record.UserID,
		Message:       record.Message,
		Processed:     record.Processed,
		TransactionID: record.TransactionID,
		CreatedAt:     record.CreatedAt,
	}

	ctx, cancel := r.database.WithTimeout(ctx)
	defer cancel()

	result := r.database.DB().WithContext(ctx).Omit(clause.Associations).Create(&messageModel)
	if result.Error != nil {
		r.logger.Error("Failed to create message record", map[string]any{
			"user_id": record.UserID,
			"error":   result.Error.Error(),
		})
		return r.errorClassifier.Wrap("creating message record", result.Error)
	}

	return nil
}
