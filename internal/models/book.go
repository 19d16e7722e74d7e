package models

import (
	"time"

	"gorm.io/gorm"
)

// Book represents an e-book offered for sale
type Book struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Title       string  `gorm:"type:varchar(500)" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Author      string  `gorm:"type:varchar(255)" json:"author"`
	Price       float64 `gorm:"type:decimal(15,2)" json:"price"`
	Image       string  `gorm:"type:text" json:"image"`
	PdfURL      string  `gorm:"type:text" json:"pdf_url"`
	IsPaid      bool    `gorm:"default:true" json:"is_paid"`
	Category    string  `gorm:"type:varchar(100)" json:"category"`
}
