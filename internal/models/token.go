package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessToken authenticates API requests. One-time tokens are minted for
// the designer widget handoff and consumed on first use.
type AccessToken struct {
	ID        string     `json:"id" gorm:"type:uuid;primary_key"`
	Token     string     `json:"token" gorm:"unique;not null"`
	UserID    string     `json:"user_id" gorm:"not null;index"`
	OneTime   bool       `json:"one_time" gorm:"default:false"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (t *AccessToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Token == "" {
		t.Token = uuid.New().String()
	}
	return nil
}
