package migration

import (
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// Supported reports whether the connected database is PostgreSQL
func (m *AdvancedIndexManager) Supported() bool {
	return m.db.Dialector.Name() == "postgres"
}

// CreateAdvancedIndexes creates PostgreSQL indexes for the ledger read paths
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []struct {
		name string
		sql  string
	}{
		{
			// Category token lookups compare against LOWER(name)
			name: "idx_categories_lower_name",
			sql:  `CREATE INDEX IF NOT EXISTS idx_categories_lower_name ON categories (LOWER(name))`,
		},
		{
			name: "idx_whatsapp_messages_sourced",
			sql: `CREATE INDEX IF NOT EXISTS idx_whatsapp_messages_sourced
				ON whatsapp_messages (created_at DESC)
				WHERE transaction_id IS NOT NULL`,
		},
		{
			name: "idx_transactions_created_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
				ON transactions USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
	}

	for _, stmt := range statements {
		if err := m.db.Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create advanced index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL table settings. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	if err := m.db.Exec(`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}

	return nil
}
