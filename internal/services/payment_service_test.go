package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nigerland_backend/internal/models"
)

// fakeGateway is a scriptable PaymentGateway for exercising the
// handshake without the network.
type fakeGateway struct {
	initializeStatus  bool
	initializeMessage string
	initializeErr     error
	initializeCalls   []string
	initializeAmounts []int64

	verifyStatus    bool
	verifyTxnStatus string
	verifyErr       error
}

func (g *fakeGateway) Initialize(ctx context.Context, email string, amountKobo int64, reference, callbackURL string) (*InitializeResult, error) {
	g.initializeCalls = append(g.initializeCalls, reference)
	g.initializeAmounts = append(g.initializeAmounts, amountKobo)
	if g.initializeErr != nil {
		return nil, g.initializeErr
	}
	return &InitializeResult{
		Status:           g.initializeStatus,
		AuthorizationURL: "https://checkout.paystack.com/test",
		Reference:        reference,
		Message:          g.initializeMessage,
	}, nil
}

func (g *fakeGateway) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	if g.verifyErr != nil {
		return nil, g.verifyErr
	}
	return &VerifyResult{Status: g.verifyStatus, TransactionStatus: g.verifyTxnStatus}, nil
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestPaymentService(t *testing.T, gateway PaymentGateway) (*PaymentService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	svc := NewPaymentService(db, gateway, nil, NewReferenceGenerator(), "http://localhost:3000")
	return svc, db
}

func seedRegistration(t *testing.T, db *gorm.DB) *models.Registration {
	t.Helper()
	reg := &models.Registration{
		RegistrationID: "REG4F2A91BC",
		FullName:       "Ada Obi",
		Email:          "ada@example.com",
		Phone:          "+2348012345678",
		Conference:     "Tax Conference 2025",
		Status:         "pending",
		PaymentStatus:  models.PaymentStatusPending,
		Amount:         25000,
	}
	if err := db.Create(reg).Error; err != nil {
		t.Fatalf("failed to seed registration: %v", err)
	}
	return reg
}

func TestInitiatePersistsReferenceAfterGatewayAccepts(t *testing.T) {
	gateway := &fakeGateway{initializeStatus: true}
	svc, db := newTestPaymentService(t, gateway)
	reg := seedRegistration(t, db)

	result, err := svc.Initiate(context.Background(), reg, map[string]interface{}{"amount": 30000.0})
	if err != nil {
		t.Fatalf("Initiate() error = %v", err)
	}

	if !strings.HasPrefix(result.Reference, "REG-REG4F2A91BC-") {
		t.Errorf("Initiate() reference = %q; want REG-<publicRef>-<timestamp>", result.Reference)
	}
	if result.AuthorizationURL == "" {
		t.Error("Initiate() returned empty authorization URL")
	}

	var stored models.Registration
	if err := db.First(&stored, reg.ID).Error; err != nil {
		t.Fatalf("failed to reload registration: %v", err)
	}
	if stored.PaymentReference != result.Reference {
		t.Errorf("stored payment reference = %q; want %q", stored.PaymentReference, result.Reference)
	}
	if stored.Amount != 30000 {
		t.Errorf("stored amount = %v; want the amount passed at initialization", stored.Amount)
	}
	if stored.RegistrationID != "REG4F2A91BC" {
		t.Errorf("public reference changed to %q; must be immutable", stored.RegistrationID)
	}
}

func TestInitiateGatewayRejectionLeavesRecordUntouched(t *testing.T) {
	gateway := &fakeGateway{initializeStatus: false, initializeMessage: "Invalid key"}
	svc, db := newTestPaymentService(t, gateway)
	reg := seedRegistration(t, db)

	_, err := svc.Initiate(context.Background(), reg, nil)

	var rejected *GatewayRejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("Initiate() error = %v; want GatewayRejectedError", err)
	}
	if rejected.Message != "Invalid key" {
		t.Errorf("rejection message = %q; want the gateway's message", rejected.Message)
	}

	var stored models.Registration
	db.First(&stored, reg.ID)
	if stored.PaymentReference != "" {
		t.Errorf("payment reference persisted despite rejection: %q", stored.PaymentReference)
	}
}

func TestInitiateTransportFailure(t *testing.T) {
	gateway := &fakeGateway{initializeErr: errors.New("connection refused")}
	svc, db := newTestPaymentService(t, gateway)
	reg := seedRegistration(t, db)

	if _, err := svc.Initiate(context.Background(), reg, nil); err == nil {
		t.Fatal("Initiate() error = nil; want transport error")
	}

	var stored models.Registration
	db.First(&stored, reg.ID)
	if stored.PaymentReference != "" {
		t.Errorf("payment reference persisted despite transport failure: %q", stored.PaymentReference)
	}
}

func TestRepeatedInitiateOverwritesReference(t *testing.T) {
	gateway := &fakeGateway{initializeStatus: true}
	svc, db := newTestPaymentService(t, gateway)
	reg := seedRegistration(t, db)

	if _, err := svc.Initiate(context.Background(), reg, nil); err != nil {
		t.Fatalf("first Initiate() error = %v", err)
	}
	second, err := svc.Initiate(context.Background(), reg, nil)
	if err != nil {
		t.Fatalf("second Initiate() error = %v", err)
	}

	if len(gateway.initializeCalls) != 2 {
		t.Fatalf("gateway received %d initializations; want 2", len(gateway.initializeCalls))
	}

	var stored models.Registration
	db.First(&stored, reg.ID)
	if stored.PaymentReference != second.Reference {
		t.Errorf("stored payment reference = %q; want the latest attempt %q", stored.PaymentReference, second.Reference)
	}
}

func TestVerifyCompletesRecordAndNotifiesOnce(t *testing.T) {
	gateway := &fakeGateway{initializeStatus: true, verifyStatus: true, verifyTxnStatus: "success"}
	svc, db := newTestPaymentService(t, gateway)
	reg := seedRegistration(t, db)

	init, err := svc.Initiate(context.Background(), reg, nil)
	if err != nil {
		t.Fatalf("Initiate() error = %v", err)
	}

	notifications := 0
	var dest models.Registration
	outcome, err := svc.Verify(context.Background(), init.Reference, &dest, func() { notifications++ })
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if !outcome.Verified || !outcome.Matched || !outcome.FirstCompletion {
		t.Errorf("Verify() outcome = %+v; want verified, matched and first completion", outcome)
	}
	if notifications != 1 {
		t.Errorf("notify invoked %d times; want 1", notifications)
	}
	if dest.RegistrationID != reg.RegistrationID {
		t.Errorf("Verify loaded record %q; want %q", dest.RegistrationID, reg.RegistrationID)
	}

	var stored models.Registration
	db.First(&stored, reg.ID)
	if stored.PaymentStatus != models.PaymentStatusCompleted {
		t.Errorf("payment status = %q; want completed", stored.PaymentStatus)
	}
	if stored.Status != "confirmed" {
		t.Errorf("lifecycle status = %q; want confirmed", stored.Status)
	}
}

func TestVerifyTwiceIsIdempotent(t *testing.T) {
	gateway := &fakeGateway{initializeStatus: true, verifyStatus: true, verifyTxnStatus: "success"}
	svc, db := newTestPaymentService(t, gateway)
	reg := seedRegistration(t, db)

	init, err := svc.Initiate(context.Background(), reg, nil)
	if err != nil {
		t.Fatalf("Initiate() error = %v", err)
	}

	notifications := 0
	notify := func() { notifications++ }

	var first models.Registration
	if _, err := svc.Verify(context.Background(), init.Reference, &first, notify); err != nil {
		t.Fatalf("first Verify() error = %v", err)
	}

	var second models.Registration
	outcome, err := svc.Verify(context.Background(), init.Reference, &second, notify)
	if err != nil {
		t.Fatalf("second Verify() error = %v", err)
	}

	if !outcome.Verified || !outcome.Matched {
		t.Errorf("second Verify() outcome = %+v; want verified and matched", outcome)
	}
	if outcome.FirstCompletion {
		t.Error("second Verify() claimed the completion; only the first may")
	}
	if notifications != 1 {
		t.Errorf("notify invoked %d times across two verifies; want 1", notifications)
	}

	var stored models.Registration
	db.First(&stored, reg.ID)
	if stored.PaymentStatus != models.PaymentStatusCompleted {
		t.Errorf("payment status = %q after repeated verify; want completed", stored.PaymentStatus)
	}
}

func TestVerifyUnknownReferenceIsStillSuccess(t *testing.T) {
	gateway := &fakeGateway{verifyStatus: true, verifyTxnStatus: "success"}
	svc, _ := newTestPaymentService(t, gateway)

	notifications := 0
	var dest models.Registration
	outcome, err := svc.Verify(context.Background(), "REG-REGDEADBEEF-20250314092653", &dest, func() { notifications++ })
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if !outcome.Verified {
		t.Error("Verify() not verified; the gateway response is authoritative")
	}
	if outcome.Matched {
		t.Error("Verify() matched a record that does not exist")
	}
	if notifications != 0 {
		t.Errorf("notify invoked %d times with no matching record; want 0", notifications)
	}
}

func TestVerifyFailedTransactionLeavesRecordPending(t *testing.T) {
	gateway := &fakeGateway{initializeStatus: true, verifyStatus: true, verifyTxnStatus: "abandoned"}
	svc, db := newTestPaymentService(t, gateway)
	reg := seedRegistration(t, db)

	init, err := svc.Initiate(context.Background(), reg, nil)
	if err != nil {
		t.Fatalf("Initiate() error = %v", err)
	}

	notifications := 0
	var dest models.Registration
	outcome, err := svc.Verify(context.Background(), init.Reference, &dest, func() { notifications++ })
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if outcome.Verified {
		t.Error("Verify() reported success for an abandoned transaction")
	}
	if notifications != 0 {
		t.Errorf("notify invoked %d times for a failed payment; want 0", notifications)
	}

	var stored models.Registration
	db.First(&stored, reg.ID)
	if stored.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("payment status = %q; must stay pending", stored.PaymentStatus)
	}
}

func TestVerifyGatewayTransportFailure(t *testing.T) {
	gateway := &fakeGateway{verifyErr: errors.New("connection refused")}
	svc, _ := newTestPaymentService(t, gateway)

	var dest models.Registration
	if _, err := svc.Verify(context.Background(), "REG-REG4F2A91BC-20250314092653", &dest, nil); err == nil {
		t.Fatal("Verify() error = nil; want transport error")
	}
}

func TestVerifyCompletionColumnsPerDomain(t *testing.T) {
	gateway := &fakeGateway{initializeStatus: true, verifyStatus: true, verifyTxnStatus: "success"}
	svc, db := newTestPaymentService(t, gateway)

	book := models.Book{Title: "The Good Nigerian", Author: "Nigerland Consult", Price: 5000, IsPaid: true}
	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book: %v", err)
	}

	purchase := &models.BookPurchase{
		PurchaseID:    "BP4F2A91BC",
		BookID:        book.ID,
		FullName:      "Ada Obi",
		Email:         "ada@example.com",
		Amount:        book.Price,
		PaymentStatus: models.PaymentStatusPending,
	}
	if err := db.Create(purchase).Error; err != nil {
		t.Fatalf("failed to seed purchase: %v", err)
	}

	init, err := svc.Initiate(context.Background(), purchase, nil)
	if err != nil {
		t.Fatalf("Initiate() error = %v", err)
	}

	var dest models.BookPurchase
	outcome, err := svc.Verify(context.Background(), init.Reference, &dest, nil)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !outcome.FirstCompletion {
		t.Fatalf("Verify() outcome = %+v; want first completion", outcome)
	}

	var stored models.BookPurchase
	db.First(&stored, purchase.ID)
	if stored.PaymentStatus != models.PaymentStatusCompleted {
		t.Errorf("purchase payment status = %q; want completed", stored.PaymentStatus)
	}
}

func TestInitiateTruncatesKobo(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		wantKobo int64
	}{
		{name: "whole naira", amount: 25000, wantKobo: 2500000},
		{name: "fractional kobo truncated", amount: 99.999, wantKobo: 9999},
		{name: "sub-kobo fraction", amount: 0.019, wantKobo: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &fakeGateway{initializeStatus: true}
			svc, db := newTestPaymentService(t, gateway)

			reg := seedRegistration(t, db)
			if err := db.Model(reg).Update("amount", tt.amount).Error; err != nil {
				t.Fatalf("failed to set amount: %v", err)
			}
			reg.Amount = tt.amount

			if _, err := svc.Initiate(context.Background(), reg, nil); err != nil {
				t.Fatalf("Initiate() error = %v", err)
			}
			if got := gateway.initializeAmounts[len(gateway.initializeAmounts)-1]; got != tt.wantKobo {
				t.Errorf("gateway received %d kobo for %v naira; want %d", got, tt.amount, tt.wantKobo)
			}
		})
	}
}
