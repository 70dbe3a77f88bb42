package ledger

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/logger"
	persistencemocks "github.com/amirhossein-jamali/whatsapp-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListMessageEntriesClampsLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"Default for zero", 0, DefaultListLimit},
		{"Default for negative", -5, DefaultListLimit},
		{"Within range", 10, 10},
		{"Capped", 1000, MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTx := persistencemocks.NewMockTransactionRepository(t)
			entries := []*entity.LedgerEntry{{CategoryName: "Makanan"}}
			mockTx.EXPECT().ListMessageEntries(mock.Anything, tt.expected).Return(entries, nil).Once()

			s := NewQueryService(mockTx, logger.NewNoopLogger())
			result, err := s.ListMessageEntries(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Equal(t, entries, result)
		})
	}
}

func TestListMessageEntriesFailure(t *testing.T) {
	mockTx := persistencemocks.NewMockTransactionRepository(t)
	mockTx.EXPECT().ListMessageEntries(mock.Anything, DefaultListLimit).Return(nil, errs.ErrDatabaseConnection).Once()

	s := NewQueryService(mockTx, logger.NewNoopLogger())
	_, err := s.ListMessageEntries(context.Background(), 0)

	assert.ErrorIs(t, err, errs.ErrPersistence)
}
