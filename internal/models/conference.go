package models

import (
	"time"

	"gorm.io/gorm"
)

// Conference represents an upcoming conference shown on the public site
type Conference struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Title       string  `gorm:"type:varchar(500)" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Date        string  `gorm:"type:varchar(100)" json:"date"`
	Location    string  `gorm:"type:varchar(255)" json:"location"`
	Fee         float64 `gorm:"type:decimal(15,2)" json:"fee"`
	ForWhom     string  `gorm:"type:varchar(500)" json:"for_whom"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`
}
