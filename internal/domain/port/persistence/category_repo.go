package persistence

import (
	"context"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
)

// CategoryRepository gives read-only access to categories
type CategoryRepository interface {
	// FindByNameContaining returns at most limit categories whose name contains
	// token as a case-insensitive substring, ordered by name.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	FindByNameContaining(ctx context.Context, token string, limit int) ([]*entity.Category, error)
}
