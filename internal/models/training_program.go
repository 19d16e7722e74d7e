package models

import (
	"time"

	"gorm.io/gorm"
)

// TrainingProgram represents a corporate training course offered by the firm
type TrainingProgram struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Title          string  `gorm:"type:varchar(500)" json:"title"`
	Category       string  `gorm:"type:varchar(100)" json:"category"` // Management, Marketing, Business Admin, ...
	Description    string  `gorm:"type:text" json:"description"`
	Duration       string  `gorm:"type:varchar(100)" json:"duration"`
	Fee            float64 `gorm:"type:decimal(15,2)" json:"fee"`
	Objectives     string  `gorm:"type:text" json:"objectives"` // JSON-encoded list
	TargetAudience string  `gorm:"type:varchar(500)" json:"target_audience"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`
}
