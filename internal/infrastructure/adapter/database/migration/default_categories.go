package migration

import (
	"context"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
)

// defaultCategories are created when the categories table is empty
var defaultCategories = []struct {
	name         string
	categoryType entity.CategoryType
	icon         string
}{
	{"makanan", entity.CategoryExpense, "🍔"},
	{"transport", entity.CategoryExpense, "🚗"},
	{"belanja", entity.CategoryExpense, "🛒"},
	{"tagihan", entity.CategoryExpense, "📄"},
	{"hiburan", entity.CategoryExpense, "🎬"},
	{"kesehatan", entity.CategoryExpense, "💊"},
	{"gaji", entity.CategoryIncome, "💰"},
	{"bonus", entity.CategoryIncome, "🎁"},
	{"investasi", entity.CategoryIncome, "📈"},
}

// SeedDefaultCategories inserts the default categories when none exist.
// It returns the number of categories created.
func (m *MigrationManager) SeedDefaultCategories(ctx context.Context) (int, error) {
	var count int64
	if err := m.db.WithContext(ctx).Model(&model.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		m.logger.Debug("Categories already present, skipping seed", map[string]any{
			"count": count,
		})
		return 0, nil
	}

	categories := make([]model.Category, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		categories = append(categories, model.Category{
			ID:   uuid.New(),
			Name: c.name,
			Type: string(c.categoryType),
			Icon: c.icon,
		})
	}

	if err := m.db.WithContext(ctx).Create(&categories).Error; err != nil {
		return 0, err
	}

	m.logger.Info("Default categories created", map[string]any{
		"count": len(categories),
	})
	return len(categories), nil
}
