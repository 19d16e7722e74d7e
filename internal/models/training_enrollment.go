package models

import (
	"time"

	"gorm.io/gorm"
)

// TrainingEnrollment records a participant enrolling in a training
// program. The amount is copied from the program fee at enrollment time.
type TrainingEnrollment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	EnrollmentID string `gorm:"type:varchar(20);uniqueIndex" json:"enrollment_id"`
	ProgramID    uint   `gorm:"index" json:"program_id"`
	FullName     string `gorm:"type:varchar(255)" json:"full_name"`
	Email        string `gorm:"type:varchar(255);index" json:"email"`
	Phone        string `gorm:"type:varchar(50)" json:"phone"`
	Organization string `gorm:"type:varchar(255)" json:"organization"`
	Position     string `gorm:"type:varchar(255)" json:"position"`

	Status           string        `gorm:"type:varchar(50);default:'pending'" json:"status"` // pending, confirmed, cancelled
	PaymentStatus    PaymentStatus `gorm:"type:varchar(50);default:'pending'" json:"payment_status"`
	PaymentReference string        `gorm:"type:varchar(100);index" json:"payment_reference"`
	Amount           float64       `gorm:"type:decimal(15,2);default:0" json:"amount"`

	// Relationships
	Program TrainingProgram `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

func (e *TrainingEnrollment) PublicRef() string     { return e.EnrollmentID }
func (e *TrainingEnrollment) PayerEmail() string    { return e.Email }
func (e *TrainingEnrollment) ChargeAmount() float64 { return e.Amount }
func (e *TrainingEnrollment) RefPrefix() string     { return "TRN" }

func (e *TrainingEnrollment) CompletionColumns() map[string]interface{} {
	return map[string]interface{}{
		"status":         "confirmed",
		"payment_status": PaymentStatusCompleted,
	}
}
