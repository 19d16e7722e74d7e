package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a past or ongoing consulting project
type Project struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Title       string `gorm:"type:varchar(500)" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Year        string `gorm:"type:varchar(20)" json:"year"`
	Status      string `gorm:"type:varchar(50);default:'active'" json:"status"`
}
