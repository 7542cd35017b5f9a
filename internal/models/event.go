package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const EventProductCreated = "product.created"

// ProductEvent is the audit row the worker writes for each consumed
// catalog event.
type ProductEvent struct {
	ID        string    `json:"id" gorm:"type:uuid;primary_key"`
	Type      string    `json:"type" gorm:"not null"`
	ProductID string    `json:"product_id" gorm:"not null;index"`
	Payload   string    `json:"payload" gorm:"type:text"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *ProductEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
