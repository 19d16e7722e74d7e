package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPaystackInitialize(t *testing.T) {
	tests := []struct {
		name         string
		responseCode int
		responseBody string
		wantStatus   bool
		wantURL      string
		wantErr      bool
	}{
		{
			name:         "successful initialization",
			responseCode: http.StatusOK,
			responseBody: `{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc123","access_code":"abc123","reference":"REG-REG4F2A91BC-20250314092653"}}`,
			wantStatus:   true,
			wantURL:      "https://checkout.paystack.com/abc123",
		},
		{
			name:         "explicit rejection",
			responseCode: http.StatusBadRequest,
			responseBody: `{"status":false,"message":"Invalid key"}`,
			wantStatus:   false,
		},
		{
			name:         "unreadable body",
			responseCode: http.StatusBadGateway,
			responseBody: `<html>Bad Gateway</html>`,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/transaction/initialize" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer sk_test_key" {
					t.Errorf("Authorization header = %q; want bearer secret key", got)
				}
				w.WriteHeader(tt.responseCode)
				w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			svc := NewPaystackServiceWithBaseURL("sk_test_key", server.URL)
			result, err := svc.Initialize(context.Background(), "ada@example.com", 500000, "REG-REG4F2A91BC-20250314092653", "http://localhost:3000/payment/success")

			if tt.wantErr {
				if err == nil {
					t.Fatal("Initialize() error = nil; want transport error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}
			if result.Status != tt.wantStatus {
				t.Errorf("Initialize() status = %v; want %v", result.Status, tt.wantStatus)
			}
			if result.AuthorizationURL != tt.wantURL {
				t.Errorf("Initialize() authorization URL = %q; want %q", result.AuthorizationURL, tt.wantURL)
			}
		})
	}
}

func TestPaystackVerify(t *testing.T) {
	tests := []struct {
		name          string
		responseBody  string
		wantStatus    bool
		wantTxnStatus string
		wantAmount    int64
	}{
		{
			name:          "settled transaction",
			responseBody:  `{"status":true,"message":"Verification successful","data":{"status":"success","amount":500000}}`,
			wantStatus:    true,
			wantTxnStatus: "success",
			wantAmount:    500000,
		},
		{
			name:          "abandoned transaction",
			responseBody:  `{"status":true,"message":"Verification successful","data":{"status":"abandoned","amount":0}}`,
			wantStatus:    true,
			wantTxnStatus: "abandoned",
		},
		{
			name:         "unknown reference",
			responseBody: `{"status":false,"message":"Transaction reference not found"}`,
			wantStatus:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/transaction/verify/REG-REG4F2A91BC-20250314092653" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			svc := NewPaystackServiceWithBaseURL("sk_test_key", server.URL)
			result, err := svc.Verify(context.Background(), "REG-REG4F2A91BC-20250314092653")
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if result.Status != tt.wantStatus {
				t.Errorf("Verify() status = %v; want %v", result.Status, tt.wantStatus)
			}
			if result.TransactionStatus != tt.wantTxnStatus {
				t.Errorf("Verify() transaction status = %q; want %q", result.TransactionStatus, tt.wantTxnStatus)
			}
			if result.AmountKobo != tt.wantAmount {
				t.Errorf("Verify() amount = %d; want %d", result.AmountKobo, tt.wantAmount)
			}
		})
	}
}

func TestPaystackTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	svc := NewPaystackServiceWithBaseURL("sk_test_key", server.URL)
	if _, err := svc.Verify(context.Background(), "REG-REG4F2A91BC-20250314092653"); err == nil {
		t.Fatal("Verify() error = nil; want transport error for unreachable gateway")
	}
}
