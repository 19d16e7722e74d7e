package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin represents a back-office account. There is normally a single
// row, created by the seed command.
type Admin struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Username string `gorm:"type:varchar(100);uniqueIndex" json:"username"`
	Password string `gorm:"type:varchar(255)" json:"-"` // bcrypt hash
	Email    string `gorm:"type:varchar(255)" json:"email"`
}
