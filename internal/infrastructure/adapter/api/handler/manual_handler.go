package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/usecase/command"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ManualEntryHandler accepts command messages from the admin form
type ManualEntryHandler struct {
	commands usecase.CommandUseCase
	secret   string
	logger   coreport.Logger
}

// NewManualEntryHandler creates a new manual entry handler. An empty secret rejects every request.
func NewManualEntryHandler(commands usecase.CommandUseCase, secret string, logger coreport.Logger) *ManualEntryHandler {
	return &ManualEntryHandler{
		commands: commands,
		secret:   secret,
		logger:   logger,
	}
}

func (h *ManualEntryHandler) authorized(presented string) bool {
	if h.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.secret)) == 1
}

// Create handles POST /api/manual-transaction
func (h *ManualEntryHandler) Create(c *gin.Context) {
	var req dto.ManualTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, errs.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	if !h.authorized(req.SecretKey) {
		h.logger.Warn("Manual entry rejected", map[string]any{
			"client_ip": c.ClientIP(),
		})
		abortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, msgUnauthorized)
		return
	}

	if strings.TrimSpace(req.PhoneNumber) == "" || strings.TrimSpace(req.Message) == "" {
		abortWithError(c, http.StatusBadRequest, errs.ErrInvalidRequest, "phone_number and message are required")
		return
	}

	outcome, err := h.commands.Process(c.Request.Context(), usecase.CommandInput{
		Channel: usecase.ChannelManual,
		Sender:  req.PhoneNumber,
		Text:    req.Message,
	})
	if err != nil {
		abortWithError(c, failureStatus(outcome, err), err, commandFailureMessage(err))
		return
	}

	c.JSON(http.StatusOK, dto.CommandResponse{
		Success:       true,
		Message:       command.Confirmation(outcome.CategoryToken, outcome.Magnitude),
		TransactionID: outcome.Transaction.ID.String(),
	})
}
