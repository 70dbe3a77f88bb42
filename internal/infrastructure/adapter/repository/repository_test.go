package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/time"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repoFixture struct {
	db           *gorm.DB
	manager      *database.Manager
	users        *UserRepository
	categories   *CategoryRepository
	transactions *TransactionRepository
	messages     *MessageRecordRepository
}

func newRepoFixture(t *testing.T) *repoFixture {
	t.Helper()

	log := logger.NewNoopLogger()
	dbManager := database.NewTestDBManager(t, log)
	db := dbManager.Setup(t)

	return &repoFixture{
		db:           db,
		manager:      dbManager.Manager,
		users:        NewUserRepository(dbManager.Manager, log),
		categories:   NewCategoryRepository(dbManager.Manager, log),
		transactions: NewTransactionRepository(dbManager.Manager, log),
		messages:     NewMessageRecordRepository(dbManager.Manager, log),
	}
}

func (f *repoFixture) category(t *testing.T, name string) *entity.Category {
	t.Helper()

	found, err := f.categories.FindByNameContaining(context.Background(), name, 10)
	require.NoError(t, err)
	for _, c := range found {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %q not seeded", name)
	return nil
}

func TestUserRepository(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()
	tp := timeprovider.NewFixedTimeProvider(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	t.Run("Unknown phone number", func(t *testing.T) {
		user, err := f.users.GetByPhoneNumber(ctx, "620000000000")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("Create then get", func(t *testing.T) {
		user := entity.NewUser("628123456789", tp)

		created, err := f.users.CreateIfAbsent(ctx, user)
		require.NoError(t, err)
		assert.True(t, created)

		stored, err := f.users.GetByPhoneNumber(ctx, "628123456789")
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.ID)
		assert.Equal(t, "user_456789", stored.Username)
		assert.True(t, user.CreatedAt.Equal(stored.CreatedAt))
	})

	t.Run("Second create for the same phone number inserts nothing", func(t *testing.T) {
		duplicate := entity.NewUser("628123456789", tp)

		created, err := f.users.CreateIfAbsent(ctx, duplicate)
		require.NoError(t, err)
		assert.False(t, created)

		var count int64
		require.NoError(t, f.db.Model(&model.User{}).Where("phone_number = ?", "628123456789").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Identifier is matched exactly", func(t *testing.T) {
		_, err := f.users.GetByPhoneNumber(ctx, "+628123456789")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestUserRepositoryConcurrentCreate(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()
	tp := timeprovider.NewRealTimeProvider()

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan bool, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := f.users.CreateIfAbsent(ctx, entity.NewUser("628999000111", tp))
			assert.NoError(t, err)
			results <- created
		}()
	}
	wg.Wait()
	close(results)

	inserted := 0
	for created := range results {
		if created {
			inserted++
		}
	}
	assert.Equal(t, 1, inserted)

	var count int64
	require.NoError(t, f.db.Model(&model.User{}).Where("phone_number = ?", "628999000111").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCategoryRepositoryFindByNameContaining(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		token    string
		expected []string
	}{
		{"Exact name", "makanan", []string{"makanan"}},
		{"Case insensitive", "MaKaNaN", []string{"makanan"}},
		{"Substring", "trans", []string{"transport"}},
		{"Several matches ordered by name", "a", []string{"belanja", "gaji", "hiburan", "investasi", "kesehatan", "makanan", "tagihan", "transport"}},
		{"No match", "xyz123", nil},
		{"Percent is literal", "%", nil},
		{"Underscore is literal", "_", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := f.categories.FindByNameContaining(ctx, tt.token, 20)
			require.NoError(t, err)

			var names []string
			for _, c := range found {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}

	t.Run("Limit is applied", func(t *testing.T) {
		found, err := f.categories.FindByNameContaining(ctx, "a", 2)
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("Category type is mapped", func(t *testing.T) {
		assert.Equal(t, entity.CategoryExpense, f.category(t, "makanan").Type)
		assert.Equal(t, entity.CategoryIncome, f.category(t, "gaji").Type)
	})
}

func TestCategoryRepositoryFoldsNonASCIINames(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Create(&model.Category{ID: uuid.New(), Name: "Éducation", Type: "expense"}).Error)

	for _, token := range []string{"édu", "ÉDU", "Éducation"} {
		t.Run(token, func(t *testing.T) {
			found, err := f.categories.FindByNameContaining(ctx, token, 5)
			require.NoError(t, err)
			require.Len(t, found, 1)
			assert.Equal(t, "Éducation", found[0].Name)
		})
	}
}

// expiredDatabase hands out the real connection but a query context whose
// deadline has already passed.
type expiredDatabase struct {
	*database.Manager
}

func (d expiredDatabase) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithDeadline(ctx, time.Now().Add(-time.Second))
}

func TestRepositoriesReportQueryTimeouts(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()
	log := logger.NewNoopLogger()
	db := expiredDatabase{Manager: f.manager}

	t.Run("User lookup", func(t *testing.T) {
		user, err := NewUserRepository(db, log).GetByPhoneNumber(ctx, "628123456789")
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.NotErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("Category search", func(t *testing.T) {
		found, err := NewCategoryRepository(db, log).FindByNameContaining(ctx, "makanan", 5)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, found)
	})

	t.Run("Configured timeout still allows queries", func(t *testing.T) {
		found, err := f.categories.FindByNameContaining(ctx, "makanan", 5)
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})
}

func TestTransactionAndMessageRepositories(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tp := timeprovider.NewFixedTimeProvider(start)

	user := entity.NewUser("628123456789", tp)
	_, err := f.users.CreateIfAbsent(ctx, user)
	require.NoError(t, err)

	food := f.category(t, "makanan")
	salary := f.category(t, "gaji")

	record := func(category *entity.Category, amount int64, desc, message string, at time.Time) *entity.Transaction {
		clock := timeprovider.NewFixedTimeProvider(at)
		tx := entity.NewTransaction(user.ID, category, decimal.NewFromInt(amount), desc, clock)
		require.NoError(t, f.transactions.Create(ctx, tx))
		require.NoError(t, f.messages.Create(ctx, entity.NewProcessedMessageRecord(tx, message, clock)))
		return tx
	}

	lunch := record(food, 50000, "makan siang", "makanan 50000 makan siang", start)
	payday := record(salary, 1000000, "", "gaji 1000000", start.Add(time.Minute))
	again := record(food, 50000, "makan siang", "makanan 50000 makan siang", start.Add(2*time.Minute))

	t.Run("Stored amounts carry the category sign", func(t *testing.T) {
		var stored model.Transaction
		require.NoError(t, f.db.First(&stored, "id = ?", lunch.ID).Error)
		assert.True(t, decimal.NewFromInt(-50000).Equal(stored.Amount), "got %s", stored.Amount)

		require.NoError(t, f.db.First(&stored, "id = ?", payday.ID).Error)
		assert.True(t, decimal.NewFromInt(1000000).Equal(stored.Amount), "got %s", stored.Amount)
	})

	t.Run("Identical messages produce separate rows", func(t *testing.T) {
		var txCount, msgCount int64
		require.NoError(t, f.db.Model(&model.Transaction{}).Count(&txCount).Error)
		require.NoError(t, f.db.Model(&model.WhatsAppMessage{}).Where("message = ?", "makanan 50000 makan siang").Count(&msgCount).Error)
		assert.Equal(t, int64(3), txCount)
		assert.Equal(t, int64(2), msgCount)
		assert.NotEqual(t, lunch.ID, again.ID)
	})

	t.Run("Ledger entries newest first", func(t *testing.T) {
		entries, err := f.transactions.ListMessageEntries(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, again.ID, entries[0].TransactionID)
		assert.Equal(t, payday.ID, entries[1].TransactionID)
		assert.Equal(t, lunch.ID, entries[2].TransactionID)

		first := entries[2]
		assert.Equal(t, user.ID, first.UserID)
		assert.Equal(t, "makanan", first.CategoryName)
		assert.Equal(t, entity.CategoryExpense, first.CategoryType)
		assert.Equal(t, "makanan 50000 makan siang", first.Message)
		assert.Equal(t, "makan siang", first.Description)
		assert.Equal(t, civil.Date{Year: 2024, Month: time.March, Day: 1}, first.TransactionDate)
		assert.True(t, decimal.NewFromInt(-50000).Equal(first.Amount))
	})

	t.Run("Ledger listing honours the limit", func(t *testing.T) {
		entries, err := f.transactions.ListMessageEntries(ctx, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, again.ID, entries[0].TransactionID)
	})

	t.Run("Transaction with unknown user violates a constraint", func(t *testing.T) {
		orphan := entity.NewTransaction(uuid.New(), food, decimal.NewFromInt(1), "", tp)
		err := f.transactions.Create(ctx, orphan)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})
}
