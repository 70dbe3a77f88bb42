package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Description     string          `gorm:"type:text"`
	TransactionDate time.Time       `gorm:"type:date;not null;index"`
	CreatedAt       time.Time       `gorm:"not null;index"`

	// Define relationships
	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
