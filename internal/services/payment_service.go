package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"nigerland_backend/internal/models"
)

// GatewayRejectedError is returned when the gateway explicitly declines
// an initialization or reports a failed verification, as opposed to a
// transport failure reaching it.
type GatewayRejectedError struct {
	Message string
}

func (e *GatewayRejectedError) Error() string {
	return fmt.Sprintf("gateway rejected request: %s", e.Message)
}

// PaymentService drives a payable record through the initiate/verify
// handshake with the payment gateway. One instance is shared by all
// four domains; the record's Payable implementation supplies the
// domain-specific pieces.
type PaymentService struct {
	db          *gorm.DB
	gateway     PaymentGateway
	cache       *RedisCache
	refs        *ReferenceGenerator
	frontendURL string
}

func NewPaymentService(db *gorm.DB, gateway PaymentGateway, cache *RedisCache, refs *ReferenceGenerator, frontendURL string) *PaymentService {
	return &PaymentService{
		db:          db,
		gateway:     gateway,
		cache:       cache,
		refs:        refs,
		frontendURL: frontendURL,
	}
}

// InitiateResult is returned to the client so it can redirect to the
// gateway's hosted checkout page.
type InitiateResult struct {
	AuthorizationURL string
	Reference        string
}

// Initiate starts a checkout for an existing record. Each call
// generates a fresh payment reference; a repeated call overwrites the
// stored one. The record is only mutated after the gateway accepts the
// initialization, so a rejection or transport failure leaves it
// untouched.
//
// extra carries additional column updates persisted together with the
// reference (the legacy conference path stores the client-supplied
// amount this way); it may be nil.
func (s *PaymentService) Initiate(ctx context.Context, rec models.Payable, extra map[string]interface{}) (*InitiateResult, error) {
	// Paystack charges in kobo; truncate, don't round
	amountKobo := int64(rec.ChargeAmount() * 100)

	reference := s.refs.PaymentRef(rec.RefPrefix(), rec.PublicRef(), time.Now())
	callbackURL := fmt.Sprintf("%s/payment/success?reference=%s", s.frontendURL, reference)

	result, err := s.gateway.Initialize(ctx, rec.PayerEmail(), amountKobo, reference, callbackURL)
	if err != nil {
		return nil, err
	}
	if !result.Status {
		return nil, &GatewayRejectedError{Message: result.Message}
	}

	updates := map[string]interface{}{
		"payment_reference": reference,
		"updated_at":        time.Now(),
	}
	for k, v := range extra {
		updates[k] = v
	}
	if err := s.db.WithContext(ctx).Model(rec).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &InitiateResult{
		AuthorizationURL: result.AuthorizationURL,
		Reference:        reference,
	}, nil
}

// VerifyOutcome reports what a verification attempt concluded
type VerifyOutcome struct {
	// Verified is true when the gateway confirms the money moved
	Verified bool
	// Matched is true when a local record carried the reference. The
	// gateway is authoritative, so Verified without Matched is still a
	// success for the caller.
	Matched bool
	// FirstCompletion is true when this call performed the
	// pending -> completed transition (at most one call ever does)
	FirstCompletion bool
	Message         string
}

// Verify checks a payment reference with the gateway and, on success,
// transitions the matching record to its completed state. dest must be
// a pointer to the domain's payable model; on a match it is loaded with
// the record. notify is invoked at most once per reference, only on the
// call that performs the completion.
//
// The completion write is conditional on payment_status still being
// pending, which makes repeated or racing verifies idempotent: the
// record stays completed and only one caller observes FirstCompletion.
func (s *PaymentService) Verify(ctx context.Context, reference string, dest models.Payable, notify func()) (*VerifyOutcome, error) {
	result, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}

	if !result.Status || result.TransactionStatus != "success" {
		return &VerifyOutcome{Verified: false, Message: "Payment verification failed"}, nil
	}

	err = s.db.WithContext(ctx).Where("payment_reference = ?", reference).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Money moved but nothing local carries the reference.
			// The gateway is the source of truth, so this is not an error.
			return &VerifyOutcome{Verified: true, Matched: false, Message: "Payment verified but record not found"}, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	for k, v := range dest.CompletionColumns() {
		updates[k] = v
	}

	res := s.db.WithContext(ctx).Model(dest).
		Where("payment_status = ?", models.PaymentStatusPending).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}

	outcome := &VerifyOutcome{
		Verified:        true,
		Matched:         true,
		FirstCompletion: res.RowsAffected == 1,
		Message:         "Payment verified successfully",
	}

	if outcome.FirstCompletion && notify != nil && s.markNotified(ctx, reference) {
		notify()
	}

	return outcome, nil
}

// markNotified claims the once-per-reference notification marker. The
// conditional update above already limits completion to one caller;
// the Redis marker additionally survives the record being re-verified
// after a manual payment_status reset. Without Redis the conditional
// update alone decides.
func (s *PaymentService) markNotified(ctx context.Context, reference string) bool {
	if s.cache == nil {
		return true
	}
	ok, err := s.cache.SetNX(ctx, "paynotify:"+reference, time.Now().Unix(), 30*24*time.Hour)
	if err != nil {
		log.Printf("Failed to set notification marker for %s: %v", reference, err)
		return true
	}
	return ok
}
