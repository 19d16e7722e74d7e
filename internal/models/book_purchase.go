package models

import (
	"time"

	"gorm.io/gorm"
)

// BookPurchase records a customer buying an e-book. The amount is
// copied from the book's price at purchase time.
type BookPurchase struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	PurchaseID string `gorm:"type:varchar(20);uniqueIndex" json:"purchase_id"`
	BookID     uint   `gorm:"index" json:"book_id"`
	Email      string `gorm:"type:varchar(255);index" json:"email"`
	FullName   string `gorm:"type:varchar(255)" json:"full_name"`
	Phone      string `gorm:"type:varchar(50)" json:"phone"`

	Amount           float64       `gorm:"type:decimal(15,2)" json:"amount"`
	PaymentStatus    PaymentStatus `gorm:"type:varchar(50);default:'pending'" json:"payment_status"`
	PaymentReference string        `gorm:"type:varchar(100);index" json:"payment_reference"`

	// Relationships
	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (p *BookPurchase) PublicRef() string     { return p.PurchaseID }
func (p *BookPurchase) PayerEmail() string    { return p.Email }
func (p *BookPurchase) ChargeAmount() float64 { return p.Amount }
func (p *BookPurchase) RefPrefix() string     { return "BOOK" }

// Book purchases carry no separate lifecycle status, only the payment state.
func (p *BookPurchase) CompletionColumns() map[string]interface{} {
	return map[string]interface{}{
		"payment_status": PaymentStatusCompleted,
	}
}
