package handler

import (
	"net/http"
	"strings"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/usecase/command"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ProviderHandler accepts messages forwarded by the alternate messaging provider
type ProviderHandler struct {
	commands usecase.CommandUseCase
	logger   coreport.Logger
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(commands usecase.CommandUseCase, logger coreport.Logger) *ProviderHandler {
	return &ProviderHandler{
		commands: commands,
		logger:   logger,
	}
}

// Receive handles POST /api/whatsapp with a JSON or form body
func (h *ProviderHandler) Receive(c *gin.Context) {
	var req dto.ProviderMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, errs.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	sender, text := req.Sender(), req.MessageText()
	if strings.TrimSpace(sender) == "" || strings.TrimSpace(text) == "" {
		abortWithError(c, http.StatusBadRequest, errs.ErrInvalidRequest, "sender and message text are required")
		return
	}

	outcome, err := h.commands.Process(c.Request.Context(), usecase.CommandInput{
		Channel: usecase.ChannelProvider,
		Sender:  sender,
		Text:    text,
	})
	if err != nil {
		message := commandFailureMessage(err)
		if errs.IsInvalidFormatError(err) || errs.IsInvalidAmountError(err) {
			message += "." + msgProviderFormatUsage
		}
		abortWithError(c, failureStatus(outcome, err), err, message)
		return
	}

	c.JSON(http.StatusOK, dto.CommandResponse{
		Success:       true,
		Message:       command.Confirmation(outcome.CategoryToken, outcome.Magnitude),
		TransactionID: outcome.Transaction.ID.String(),
	})
}
