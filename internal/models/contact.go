package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact represents a message submitted through the contact form
type Contact struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name    string `gorm:"type:varchar(255)" json:"name"`
	Email   string `gorm:"type:varchar(255);index" json:"email"`
	Phone   string `gorm:"type:varchar(50)" json:"phone"`
	Subject string `gorm:"type:varchar(500)" json:"subject"`
	Message string `gorm:"type:text" json:"message"`
	Status  string `gorm:"type:varchar(50);default:'unread'" json:"status"` // unread, read, responded
}
