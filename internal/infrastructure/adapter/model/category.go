package model

import (
	"github.com/google/uuid"
)

// Category represents the database model for categories
type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null;size:100"`
	Type string    `gorm:"not null;size:16;index"`
	Icon string    `gorm:"size:16"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
