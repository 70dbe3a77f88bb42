package handler

import (
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LedgerHandler lists message-sourced ledger entries
type LedgerHandler struct {
	query  usecase.LedgerQueryUseCase
	logger coreport.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(query usecase.LedgerQueryUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		query:  query,
		logger: logger,
	}
}

// List handles GET /api/whatsapp-transactions?limit=N
func (h *LedgerHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortWithError(c, http.StatusBadRequest, errs.ErrInvalidRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.query.ListMessageEntries(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err, msgInternalServer)
		return
	}

	response := dto.LedgerListResponse{
		Entries: make([]dto.LedgerEntryResponse, 0, len(entries)),
		Count:   len(entries),
	}
	for _, e := range entries {
		response.Entries = append(response.Entries, dto.LedgerEntryResponse{
			TransactionID:   e.TransactionID.String(),
			UserID:          e.UserID.String(),
			Amount:          e.Amount.StringFixed(2),
			Description:     e.Description,
			TransactionDate: e.TransactionDate.String(),
			CreatedAt:       e.CreatedAt,
			Category: dto.CategoryResponse{
				Name: e.CategoryName,
				Type: string(e.CategoryType),
				Icon: e.CategoryIcon,
			},
			Message: e.Message,
		})
	}

	c.JSON(http.StatusOK, response)
}
