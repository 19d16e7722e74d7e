package models

// PaymentStatus tracks whether money has moved for a payable record
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payable is implemented by every record that goes through the
// Paystack initiate/verify handshake: conference registrations,
// book purchases, training enrollments and MoreLife assessments.
type Payable interface {
	// PublicRef returns the human-readable reference shown to the customer
	PublicRef() string
	// PayerEmail returns the email the gateway charges against
	PayerEmail() string
	// ChargeAmount returns the amount in Naira (major units)
	ChargeAmount() float64
	// RefPrefix returns the domain prefix used in payment references
	RefPrefix() string
	// CompletionColumns returns the column values applied when the
	// gateway confirms payment. payment_status must only ever move
	// pending -> completed here.
	CompletionColumns() map[string]interface{}
}
