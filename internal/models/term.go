package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttributeTerm is one value on a classification axis, e.g. the color
// "navy" on the pa_color taxonomy. Position fixes enumeration order.
type AttributeTerm struct {
	ID        string    `json:"id" gorm:"type:uuid;primary_key"`
	Taxonomy  string    `json:"taxonomy" gorm:"not null;index"`
	Slug      string    `json:"slug" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *AttributeTerm) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
