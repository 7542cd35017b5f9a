package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaAsset is a stored upload plus its generated thumbnail rendition.
type MediaAsset struct {
	ID           string    `json:"id" gorm:"type:uuid;primary_key"`
	AuthorID     string    `json:"author_id" gorm:"not null"`
	FileName     string    `json:"file_name" gorm:"not null"`
	FilePath     string    `json:"file_path" gorm:"not null"`
	URL          string    `json:"url" gorm:"not null"`
	ThumbnailURL string    `json:"thumbnail_url"`
	MimeType     string    `json:"mime_type"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (m *MediaAsset) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
