package dto

import "time"

// CategoryResponse describes the category of a ledger entry
type CategoryResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}

// LedgerEntryResponse is a message-sourced ledger entry
type LedgerEntryResponse struct {
	TransactionID   string           `json:"transaction_id"`
	UserID          string           `json:"user_id"`
	Amount          string           `json:"amount"`
	Description     string           `json:"description"`
	TransactionDate string           `json:"transaction_date"`
	CreatedAt       time.Time        `json:"created_at"`
	Category        CategoryResponse `json:"category"`
	Message         string           `json:"message"`
}

// LedgerListResponse wraps a page of ledger entries
type LedgerListResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Count   int                   `json:"count"`
}
