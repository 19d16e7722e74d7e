package models

import (
	"time"

	"gorm.io/gorm"
)

// Announcement represents a site-wide announcement banner
type Announcement struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Title    string `gorm:"type:varchar(500)" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	Type     string `gorm:"type:varchar(50);default:'info'" json:"type"` // info, warning, success
	IsActive bool   `gorm:"default:true" json:"is_active"`
}
