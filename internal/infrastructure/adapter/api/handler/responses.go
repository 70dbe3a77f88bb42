package handler

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Failure messages returned to HTTP callers of the command endpoints
const (
	msgInvalidFormat       = "Format pesan tidak valid"
	msgInvalidAmount       = "Jumlah tidak valid"
	msgCategoryNotFound    = "Kategori tidak ditemukan"
	msgUserCreationFailed  = "Gagal membuat user"
	msgPersistenceFailed   = "Gagal menyimpan transaksi"
	msgInvalidRequest      = "Permintaan tidak valid"
	msgProviderFormatUsage = " Gunakan format: [kategori] [jumlah] [deskripsi]"
	msgUnauthorized        = "Unauthorized"
	msgInternalServer      = "Internal server error"
)

// commandFailureMessage maps a pipeline failure to the caller-facing message
func commandFailureMessage(err error) string {
	switch {
	case errs.IsInvalidFormatError(err):
		return msgInvalidFormat
	case errs.IsInvalidAmountError(err):
		return msgInvalidAmount
	case errs.IsCategoryNotFoundError(err):
		return msgCategoryNotFound
	case errs.IsUserCreationFailedError(err):
		return msgUserCreationFailed
	case errors.Is(err, errs.ErrInvalidRequest):
		return msgInvalidRequest
	default:
		return msgPersistenceFailed
	}
}

// errorDetail exposes the cause of client errors and hides server-side details
func errorDetail(err error) string {
	if !errs.IsClientError(err) {
		return msgInternalServer
	}
	var pipelineErr *errs.PipelineError
	if errors.As(err, &pipelineErr) {
		return pipelineErr.Err.Error()
	}
	return err.Error()
}

// failureStatus prefers the status the pipeline chose for the failure
func failureStatus(outcome *usecase.CommandOutcome, err error) int {
	if outcome != nil && outcome.StatusCode >= http.StatusBadRequest {
		return outcome.StatusCode
	}
	if errs.IsClientError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:  errs.ErrorCode(err),
		Error: message,
	})
}
