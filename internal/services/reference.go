package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReferenceGenerator produces the two kinds of identifiers used by the
// payment flow: short public references handed to customers at record
// creation, and per-attempt payment references exchanged with Paystack.
type ReferenceGenerator struct{}

func NewReferenceGenerator() *ReferenceGenerator {
	return &ReferenceGenerator{}
}

// PublicRef returns a customer-facing reference such as "REG4F2A91BC":
// a domain prefix followed by 8 uppercase hex characters.
func (g *ReferenceGenerator) PublicRef(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(hex[:8])
}

// PaymentRef returns the reference sent to the gateway for one checkout
// attempt. The second-resolution timestamp keeps repeated initiations
// for the same record distinct.
func (g *ReferenceGenerator) PaymentRef(prefix, publicRef string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, publicRef, at.Format("20060102150405"))
}
