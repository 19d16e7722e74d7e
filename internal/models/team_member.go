package models

import (
	"time"

	"gorm.io/gorm"
)

// TeamMember represents a staff profile on the about page
type TeamMember struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name        string `gorm:"type:varchar(255)" json:"name"`
	Title       string `gorm:"type:varchar(255)" json:"title"`
	Credentials string `gorm:"type:varchar(255)" json:"credentials"`
	Bio         string `gorm:"type:text" json:"bio"`
	Image       string `gorm:"type:text" json:"image"`
	Order       int    `gorm:"default:0" json:"order"`
}
