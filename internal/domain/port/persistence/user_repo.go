package persistence

import (
	"context"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
)

// UserRepository defines the user operations the entity resolver needs
type UserRepository interface {
	// GetByPhoneNumber retrieves a user by exact contact identifier
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this identifier
	// - ErrDatabaseConnection: If database connection fails
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)

	// CreateIfAbsent inserts the user unless another row already holds its
	// phone number. It reports whether this call inserted the row.
	//
	// Possible errors:
	// - ErrConstraintViolation: If a constraint other than the phone number uniqueness fails
	// - ErrDatabaseConnection: If database connection fails
	CreateIfAbsent(ctx context.Context, user *entity.User) (bool, error)
}
