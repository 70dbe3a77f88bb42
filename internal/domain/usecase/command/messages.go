package command

import (
	"fmt"
	"net/http"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Replies sent to chat senders
const (
	replyInvalidFormat      = "Format pesan tidak valid. Gunakan: kategori jumlah deskripsi"
	replyInvalidAmount      = "Jumlah tidak valid. Gunakan angka untuk jumlah."
	replyUserCreationFailed = "Terjadi kesalahan saat mendaftarkan nomor Anda."
	replyCategoryNotFound   = "Kategori \"%s\" tidak ditemukan. Silakan gunakan kategori yang valid."
	replyPersistenceFailed  = "Terjadi kesalahan saat menyimpan transaksi."
	replySuccess            = "Transaksi berhasil dicatat!\nKategori: %s\nJumlah: %s\nDeskripsi: %s"
	confirmation            = "Transaksi %s sebesar %s berhasil dicatat."
)

// SuccessReply is the chat acknowledgement of a stored transaction
func SuccessReply(categoryName string, magnitude decimal.Decimal, description string) string {
	return fmt.Sprintf(replySuccess, categoryName, entity.FormatAmount(magnitude), description)
}

// Confirmation is the one-line confirmation returned to HTTP callers
func Confirmation(categoryToken string, magnitude decimal.Decimal) string {
	return fmt.Sprintf(confirmation, categoryToken, entity.FormatAmount(magnitude.Abs()))
}

// FailureReply is the chat message explaining why a command was rejected
func FailureReply(err error, categoryToken string) string {
	switch {
	case errs.IsInvalidFormatError(err):
		return replyInvalidFormat
	case errs.IsInvalidAmountError(err):
		return replyInvalidAmount
	case errs.IsCategoryNotFoundError(err):
		return fmt.Sprintf(replyCategoryNotFound, categoryToken)
	case errs.IsUserCreationFailedError(err):
		return replyUserCreationFailed
	default:
		return replyPersistenceFailed
	}
}

// StatusCodeFor maps a pipeline failure kind to an HTTP status
func StatusCodeFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errs.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
