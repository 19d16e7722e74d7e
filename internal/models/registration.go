package models

import (
	"time"

	"gorm.io/gorm"
)

// Registration represents a conference registration
type Registration struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	RegistrationID string `gorm:"type:varchar(20);uniqueIndex" json:"registration_id"`
	FullName       string `gorm:"type:varchar(255)" json:"full_name"`
	Email          string `gorm:"type:varchar(255);index" json:"email"`
	Phone          string `gorm:"type:varchar(50)" json:"phone"`
	Organization   string `gorm:"type:varchar(255)" json:"organization"`
	Profession     string `gorm:"type:varchar(255)" json:"profession"`
	Conference     string `gorm:"type:varchar(255)" json:"conference"`
	ConferenceDate string `gorm:"type:varchar(100)" json:"conference_date"`
	AdditionalInfo string `gorm:"type:text" json:"additional_info"`

	Status           string        `gorm:"type:varchar(50);default:'pending'" json:"status"` // pending, confirmed, cancelled
	PaymentStatus    PaymentStatus `gorm:"type:varchar(50);default:'pending'" json:"payment_status"`
	PaymentReference string        `gorm:"type:varchar(100);index" json:"payment_reference"`
	Amount           float64       `gorm:"type:decimal(15,2);default:0" json:"amount"`
}

func (r *Registration) PublicRef() string     { return r.RegistrationID }
func (r *Registration) PayerEmail() string    { return r.Email }
func (r *Registration) ChargeAmount() float64 { return r.Amount }
func (r *Registration) RefPrefix() string     { return "REG" }

func (r *Registration) CompletionColumns() map[string]interface{} {
	return map[string]interface{}{
		"status":         "confirmed",
		"payment_status": PaymentStatusCompleted,
	}
}
