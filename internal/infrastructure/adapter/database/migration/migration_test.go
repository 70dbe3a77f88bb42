package migration

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/time"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestMigrateAll(t *testing.T) {
	db := openTestDB(t)
	mgr := NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	ctx := context.Background()

	require.NoError(t, mgr.MigrateAll(ctx))

	for _, table := range []string{"users", "categories", "transactions", "whatsapp_messages", "migration_versions"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
	assert.True(t, db.Migrator().HasIndex(&model.User{}, "idx_users_phone_number"))

	version, err := mgr.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)

	var categories []model.Category
	require.NoError(t, db.Order("name").Find(&categories).Error)
	assert.Len(t, categories, len(defaultCategories))

	types := map[string]string{}
	for _, c := range categories {
		types[c.Name] = c.Type
	}
	assert.Equal(t, "expense", types["makanan"])
	assert.Equal(t, "income", types["gaji"])
}

func TestMigrateAllIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	mgr := NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	ctx := context.Background()

	require.NoError(t, mgr.MigrateAll(ctx))
	require.NoError(t, mgr.MigrateAll(ctx))

	var versions int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&versions).Error)
	assert.Equal(t, int64(1), versions)

	var categories int64
	require.NoError(t, db.Model(&model.Category{}).Count(&categories).Error)
	assert.Equal(t, int64(len(defaultCategories)), categories)
}

func TestSeedDefaultCategoriesSkipsNonEmptyTable(t *testing.T) {
	db := openTestDB(t)
	mgr := NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	ctx := context.Background()

	require.NoError(t, db.AutoMigrate(&model.Category{}))
	require.NoError(t, db.Create(&model.Category{ID: uuid.New(), Name: "Custom", Type: "expense"}).Error)

	created, err := mgr.SeedDefaultCategories(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)

	var count int64
	require.NoError(t, db.Model(&model.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAdvancedIndexesOnlyForPostgres(t *testing.T) {
	db := openTestDB(t)
	assert.False(t, NewAdvancedIndexManager(db, logger.NewNoopLogger()).Supported())
}
