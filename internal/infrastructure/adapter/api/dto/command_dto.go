package dto

import "strings"

// ManualTransactionRequest is a command message submitted through the admin form
type ManualTransactionRequest struct {
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
	SecretKey   string `json:"secret_key"`
}

// ProviderMessageRequest is an inbound message from the alternate provider.
// Field names differ in case between provider versions; both are accepted.
type ProviderMessageRequest struct {
	From      string `json:"From" form:"From"`
	FromLower string `json:"from" form:"from"`
	Body      string `json:"Body" form:"Body"`
	BodyLower string `json:"body" form:"body"`
	Text      string `json:"text" form:"text"`
}

// Sender returns the first non-empty sender field
func (r *ProviderMessageRequest) Sender() string {
	return firstNonBlank(r.From, r.FromLower)
}

// MessageText returns the first non-empty text field
func (r *ProviderMessageRequest) MessageText() string {
	return firstNonBlank(r.Body, r.BodyLower, r.Text)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// CommandResponse reports a stored ledger entry to HTTP callers
type CommandResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
}
