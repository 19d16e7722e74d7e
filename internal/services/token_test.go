package services

import (
	"testing"
	"time"
)

func TestTokenIssueAndParse(t *testing.T) {
	svc := &TokenService{secret: []byte("test-secret"), expiry: time.Hour}

	raw, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	username, err := svc.Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if username != "admin" {
		t.Errorf("Parse() subject = %q; want %q", username, "admin")
	}
}

func TestTokenParseRejectsWrongSecret(t *testing.T) {
	issuer := &TokenService{secret: []byte("test-secret"), expiry: time.Hour}
	verifier := &TokenService{secret: []byte("other-secret"), expiry: time.Hour}

	raw, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Parse(raw); err == nil {
		t.Fatal("Parse() accepted a token signed with a different secret")
	}
}

func TestTokenParseRejectsExpired(t *testing.T) {
	svc := &TokenService{secret: []byte("test-secret"), expiry: -time.Minute}

	raw, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := svc.Parse(raw); err == nil {
		t.Fatal("Parse() accepted an expired token")
	}
}

func TestTokenParseRejectsGarbage(t *testing.T) {
	svc := &TokenService{secret: []byte("test-secret"), expiry: time.Hour}

	if _, err := svc.Parse("not-a-token"); err == nil {
		t.Fatal("Parse() accepted a malformed token")
	}
}
