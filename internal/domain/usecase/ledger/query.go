package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/usecase"
)

// Listing limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var _ usecase.LedgerQueryUseCase = (*QueryService)(nil)

// QueryService lists message-sourced ledger entries
type QueryService struct {
	transactionRepo persistence.TransactionRepository
	logger          coreport.Logger
}

// NewQueryService creates a new ledger query service
func NewQueryService(transactionRepo persistence.TransactionRepository, logger coreport.Logger) *QueryService {
	return &QueryService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// ListMessageEntries returns up to limit entries, newest first. Non-positive
// limits fall back to DefaultListLimit and large ones are capped at MaxListLimit.
func (s *QueryService) ListMessageEntries(ctx context.Context, limit int) ([]*entity.LedgerEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	entries, err := s.transactionRepo.ListMessageEntries(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to list ledger entries", map[string]any{
			"limit": limit,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrPersistence, err.Error())
	}

	return entries, nil
}
