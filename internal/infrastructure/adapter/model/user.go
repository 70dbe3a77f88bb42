package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents the database model for users
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username    string    `gorm:"not null;size:64"`
	PhoneNumber string    `gorm:"not null;size:64;uniqueIndex:idx_users_phone_number"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
