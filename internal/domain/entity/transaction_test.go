package entity

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	coremocks "github.com/amirhossein-jamali/whatsapp-ledger/mocks/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	today := civil.Date{Year: 2024, Month: time.March, Day: 1}
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockTime.EXPECT().Today().Return(today).Maybe()

	userID := uuid.New()
	food := &Category{ID: uuid.New(), Name: "Makanan", Type: CategoryExpense}
	salary := &Category{ID: uuid.New(), Name: "Gaji", Type: CategoryIncome}

	t.Run("Expense is stored negative", func(t *testing.T) {
		tx := NewTransaction(userID, food, decimal.NewFromInt(50000), "makan siang", mockTime)

		assert.NotEqual(t, uuid.Nil, tx.ID)
		assert.Equal(t, userID, tx.UserID)
		assert.Equal(t, food.ID, tx.CategoryID)
		assert.True(t, decimal.NewFromInt(-50000).Equal(tx.Amount))
		assert.Equal(t, "makan siang", tx.Description)
		assert.Equal(t, today, tx.TransactionDate)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.True(t, tx.IsExpense())
		assert.True(t, decimal.NewFromInt(50000).Equal(tx.Magnitude()))
	})

	t.Run("Income is stored positive even from a negative magnitude", func(t *testing.T) {
		tx := NewTransaction(userID, salary, decimal.NewFromInt(-1000000), "", mockTime)

		assert.True(t, decimal.NewFromInt(1000000).Equal(tx.Amount))
		assert.False(t, tx.IsExpense())
		assert.Empty(t, tx.Description)
	})

	t.Run("Explicit transaction date", func(t *testing.T) {
		booked := civil.Date{Year: 2024, Month: time.February, Day: 28}
		tx := NewTransaction(userID, food, decimal.NewFromInt(1), "", mockTime, WithTransactionDate(booked))

		assert.Equal(t, booked, tx.TransactionDate)
	})
}

func TestNewProcessedMessageRecord(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockTime.EXPECT().Today().Return(civil.DateOf(fixedTime)).Maybe()

	food := &Category{ID: uuid.New(), Type: CategoryExpense}
	tx := NewTransaction(uuid.New(), food, decimal.NewFromInt(50000), "makan siang", mockTime)

	record := NewProcessedMessageRecord(tx, "makanan 50000 makan siang", mockTime)

	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.Equal(t, tx.UserID, record.UserID)
	assert.Equal(t, "makanan 50000 makan siang", record.Message)
	assert.True(t, record.Processed)
	if assert.NotNil(t, record.TransactionID) {
		assert.Equal(t, tx.ID, *record.TransactionID)
	}
	assert.Equal(t, fixedTime, record.CreatedAt)
}
