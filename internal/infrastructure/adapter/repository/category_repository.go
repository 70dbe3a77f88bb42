package repository

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var _ persistence.CategoryRepository = (*CategoryRepository)(nil)

// sqliteDialect is the dialector name of the sqlite driver
const sqliteDialect = "sqlite"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CategoryRepository implements CategoryRepository interface using GORM
type CategoryRepository struct {
	database        Database
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(database Database, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{
		database:        database,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func categoryToEntity(m *model.Category) *entity.Category {
	return &entity.Category{
		ID:   m.ID,
		Name: m.Name,
		Type: entity.CategoryType(m.Type),
		Icon: m.Icon,
	}
}

// FindByNameContaining returns categories whose lower-cased name contains the
// lower-cased token. LIKE wildcards in the token match literally.
func (r *CategoryRepository) FindByNameContaining(ctx context.Context, token string, limit int) ([]*entity.Category, error) {
	ctx, cancel := r.database.WithTimeout(ctx)
	defer cancel()

	db := r.database.DB().WithContext(ctx)
	lowerToken := strings.ToLower(token)

	var (
		categoryModels []model.Category
		err            error
	)
	if db.Dialector.Name() == sqliteDialect {
		categoryModels, err = findContainingFolded(db, lowerToken, limit)
	} else {
		pattern := "%" + likeEscaper.Replace(lowerToken) + "%"
		err = db.
			Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
			Order("name").
			Limit(limit).
			Find(&categoryModels).Error
	}

	if err != nil {
		r.logger.Error("Database error when finding categories", map[string]any{
			"category_token": token,
			"error":          err.Error(),
		})
		return nil, r.errorClassifier.Wrap("finding categories", err)
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, categoryToEntity(&categoryModels[i]))
	}

	r.logger.Debug("Categories matched", map[string]any{
		"category_token": token,
		"matches":        len(categories),
	})
	return categories, nil
}

// findContainingFolded matches in Go because SQLite's LOWER only folds ASCII.
// The categories table is a small read-only list.
func findContainingFolded(db *gorm.DB, lowerToken string, limit int) ([]model.Category, error) {
	var all []model.Category
	if err := db.Order("name").Find(&all).Error; err != nil {
		return nil, err
	}

	matched := make([]model.Category, 0, len(all))
	for _, c := range all {
		if limit > 0 && len(matched) == limit {
			break
		}
		if strings.Contains(strings.ToLower(c.Name), lowerToken) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
