package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Webhook delivery statuses
const (
	statusSuccess            = "success"
	statusNoMessages         = "No messages found"
	statusEmptyMessage       = "Empty message"
	statusInvalidFormat      = "Invalid format"
	statusInvalidAmount      = "Invalid amount"
	statusUserCreationFailed = "User creation failed"
	statusCategoryNotFound   = "Category not found"
	statusTransactionFailed  = "Transaction failed"
	statusInvalidRequest     = "Invalid request"
)

// WebhookHandler serves the WhatsApp Cloud API webhook
type WebhookHandler struct {
	commands    usecase.CommandUseCase
	verifyToken string
	logger      coreport.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(commands usecase.CommandUseCase, verifyToken string, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{
		commands:    commands,
		verifyToken: verifyToken,
		logger:      logger,
	}
}

// Verify handles the GET subscription handshake
func (h *WebhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && h.verifyToken != "" &&
		subtle.ConstantTimeCompare([]byte(token), []byte(h.verifyToken)) == 1 {
		h.logger.Info("Webhook verified", nil)
		c.String(http.StatusOK, challenge)
		return
	}

	h.logger.Warn("Webhook verification failed", map[string]any{
		"mode": mode,
	})
	c.String(http.StatusForbidden, "Verification failed")
}

// Receive handles POSTed message notifications
func (h *WebhookHandler) Receive(c *gin.Context) {
	var payload dto.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("Invalid webhook payload", map[string]any{
			"error": err.Error(),
		})
		abortWithError(c, http.StatusBadRequest, errs.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	message, ok := payload.FirstMessage()
	if !ok {
		c.JSON(http.StatusOK, dto.WebhookResponse{Status: statusNoMessages})
		return
	}

	text := message.Body()
	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusOK, dto.WebhookResponse{Status: statusEmptyMessage})
		return
	}

	outcome, err := h.commands.Process(c.Request.Context(), usecase.CommandInput{
		Channel: usecase.ChannelWebhook,
		Sender:  message.From,
		Text:    text,
	})
	if err != nil {
		c.JSON(failureStatus(outcome, err), dto.WebhookResponse{
			Status: webhookStatus(err),
			Code:   errs.ErrorCode(err),
			Error:  errorDetail(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{Status: statusSuccess})
}

func webhookStatus(err error) string {
	switch {
	case errs.IsInvalidFormatError(err):
		return statusInvalidFormat
	case errs.IsInvalidAmountError(err):
		return statusInvalidAmount
	case errs.IsCategoryNotFoundError(err):
		return statusCategoryNotFound
	case errs.IsUserCreationFailedError(err):
		return statusUserCreationFailed
	case errs.IsClientError(err):
		return statusInvalidRequest
	default:
		return statusTransactionFailed
	}
}
