package model

import (
	"time"

	"github.com/google/uuid"
)

// WhatsAppMessage is the audit record of an inbound command message
type WhatsAppMessage struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Message       string     `gorm:"type:text;not null"`
	Processed     bool       `gorm:"not null;default:false"`
	TransactionID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time  `gorm:"not null"`

	// Define relationships
	User        User         `gorm:"foreignKey:UserID;references:ID"`
	Transaction *Transaction `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for WhatsAppMessage
func (WhatsAppMessage) TableName() string {
	return "whatsapp_messages"
}
