package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const paystackBaseURL = "https://api.paystack.co"

// PaymentGateway abstracts the remote payment provider so handlers and
// the payment service can be tested against a fake implementation.
type PaymentGateway interface {
	// Initialize starts a checkout for the given amount in kobo and
	// returns the hosted authorization URL. An explicit rejection by
	// the gateway comes back as a result with Status=false; a transport
	// failure comes back as an error.
	Initialize(ctx context.Context, email string, amountKobo int64, reference, callbackURL string) (*InitializeResult, error)
	// Verify asks the gateway whether the transaction behind the
	// reference actually settled.
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}

// InitializeResult is the outcome of a checkout initialization
type InitializeResult struct {
	Status           bool
	AuthorizationURL string
	AccessCode       string
	Reference        string
	Message          string
}

// VerifyResult is the outcome of a transaction verification.
// TransactionStatus is Paystack's own status for the charge, e.g.
// "success", "abandoned" or "failed".
type VerifyResult struct {
	Status            bool
	TransactionStatus string
	AmountKobo        int64
	Message           string
}

// PaystackService talks to the Paystack REST API
type PaystackService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewPaystackService(secretKey string) *PaystackService {
	return &PaystackService{
		secretKey: secretKey,
		baseURL:   paystackBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewPaystackServiceWithBaseURL is used by tests to point the client at
// a local stub server.
func NewPaystackServiceWithBaseURL(secretKey, baseURL string) *PaystackService {
	s := NewPaystackService(secretKey)
	s.baseURL = baseURL
	return s
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type paystackInitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type paystackVerifyData struct {
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

func (s *PaystackService) Initialize(ctx context.Context, email string, amountKobo int64, reference, callbackURL string) (*InitializeResult, error) {
	payload := map[string]interface{}{
		"email":     email,
		"amount":    amountKobo,
		"reference": reference,
	}
	if callbackURL != "" {
		payload["callback_url"] = callbackURL
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	s.setHeaders(req)

	var envelope paystackEnvelope
	if err := s.do(req, &envelope); err != nil {
		return nil, err
	}

	result := &InitializeResult{Status: envelope.Status, Message: envelope.Message}
	if envelope.Status && len(envelope.Data) > 0 {
		var data paystackInitializeData
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return nil, fmt.Errorf("paystack initialize: malformed response data: %w", err)
		}
		result.AuthorizationURL = data.AuthorizationURL
		result.AccessCode = data.AccessCode
		result.Reference = data.Reference
	}
	return result, nil
}

func (s *PaystackService) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}
	s.setHeaders(req)

	var envelope paystackEnvelope
	if err := s.do(req, &envelope); err != nil {
		return nil, err
	}

	result := &VerifyResult{Status: envelope.Status, Message: envelope.Message}
	if envelope.Status && len(envelope.Data) > 0 {
		var data paystackVerifyData
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return nil, fmt.Errorf("paystack verify: malformed response data: %w", err)
		}
		result.TransactionStatus = data.Status
		result.AmountKobo = data.Amount
	}
	return result, nil
}

func (s *PaystackService) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/json")
}

// do executes the request and decodes the standard Paystack envelope.
// Any non-decodable body is treated as a transport failure; a decodable
// body with status=false is a normal gateway rejection, not an error.
func (s *PaystackService) do(req *http.Request, envelope *paystackEnvelope) error {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(envelope); err != nil {
		return fmt.Errorf("paystack returned unreadable response (HTTP %d): %w", resp.StatusCode, err)
	}
	return nil
}
