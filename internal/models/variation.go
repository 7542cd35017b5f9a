package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Variation is one purchasable attribute combination under a variable
// product. Stock is never managed on designer products.
type Variation struct {
	ID           string    `json:"id" gorm:"type:uuid;primary_key"`
	ProductID    string    `json:"product_id" gorm:"not null;index"`
	Status       string    `json:"status" gorm:"default:publish"`
	Price        float64   `json:"price" gorm:"type:decimal(10,2)"`
	Attributes   StringMap `json:"attributes" gorm:"type:text"`
	ManageStock  bool      `json:"manage_stock" gorm:"default:false"`
	Virtual      bool      `json:"virtual" gorm:"default:false"`
	Downloadable bool      `json:"downloadable" gorm:"default:false"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (v *Variation) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
