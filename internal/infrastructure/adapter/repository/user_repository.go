package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ persistence.UserRepository = (*UserRepository)(nil)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	database        Database
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(database Database, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		database:        database,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:          m.ID,
		Username:    m.Username,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
	}
}

// GetByPhoneNumber retrieves a user by exact contact identifier
func (r *UserRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	var userModel model.User
	ctx, cancel := r.database.WithTimeout(ctx)
	defer cancel()

	result := r.database.DB().WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		Take(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		r.logger.Error("Database error when getting user", map[string]any{
			"phone_number": phoneNumber,
			"error":        result.Error.Error(),
		})
		return nil, r.errorClassifier.Wrap("getting user", result.Error)
	}

	return userToEntity(&userModel), nil
}

// CreateIfAbsent inserts the user unless the phone number is already taken.
// A concurrent insert of the same phone number is absorbed by the unique index.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, user *entity.User) (bool, error) {
	userModel := model.User{
		ID:          user.ID,
		Username:    user.Username,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt,
	}

	ctx, cancel := r.database.WithTimeout(ctx)
	defer cancel()

	result := r.database.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone_number"}},
			DoNothing: true,
		}).
		Create(&userModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Debug("User already created concurrently", map[string]any{
				"phone_number": user.PhoneNumber,
			})
			return false, nil
		}
		r.logger.Error("Database error when creating user", map[string]any{
			"phone_number": user.PhoneNumber,
			"error":        result.Error.Error(),
		})
		return false, r.errorClassifier.Wrap("creating user", result.Error)
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id":      user.ID,
		"username":     user.Username,
		"phone_number": user.PhoneNumber,
	})
	return true, nil
}
