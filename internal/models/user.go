package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleSeller = "seller"

type User struct {
	ID        string     `json:"id" gorm:"type:uuid;primary_key"`
	Email     string     `json:"email" gorm:"unique;not null"`
	Name      string     `json:"name" gorm:"not null"`
	Roles     StringList `json:"roles" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// IsVendor reports whether the user may publish marketplace products.
func (u *User) IsVendor() bool {
	for _, r := range u.Roles {
		if r == RoleSeller {
			return true
		}
	}
	return false
}
