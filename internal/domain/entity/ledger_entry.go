package entity

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is a read model of a transaction with its category and source message
type LedgerEntry struct {
	TransactionID   uuid.UUID
	UserID          uuid.UUID
	Amount          decimal.Decimal
	Description     string
	TransactionDate civil.Date
	CreatedAt       time.Time
	CategoryName    string
	CategoryType    CategoryType
	CategoryIcon    string
	Message         string
}
