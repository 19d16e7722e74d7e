package services

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestPublicRefFormat(t *testing.T) {
	g := NewReferenceGenerator()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "conference registration", prefix: "REG"},
		{name: "book purchase", prefix: "BP"},
		{name: "training enrollment", prefix: "TE"},
		{name: "morelife assessment", prefix: "ML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := g.PublicRef(tt.prefix)

			pattern := regexp.MustCompile("^" + tt.prefix + "[0-9A-F]{8}$")
			if !pattern.MatchString(ref) {
				t.Errorf("PublicRef(%q) = %q; want prefix plus 8 uppercase hex characters", tt.prefix, ref)
			}
		})
	}
}

func TestPublicRefUniqueness(t *testing.T) {
	g := NewReferenceGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := g.PublicRef("REG")
		if seen[ref] {
			t.Fatalf("PublicRef produced duplicate %q after %d draws", ref, i)
		}
		seen[ref] = true
	}
}

func TestPaymentRefFormat(t *testing.T) {
	g := NewReferenceGenerator()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	ref := g.PaymentRef("BOOK", "BP4F2A91BC", at)

	want := "BOOK-BP4F2A91BC-20250314092653"
	if ref != want {
		t.Errorf("PaymentRef() = %q; want %q", ref, want)
	}
}

func TestPaymentRefDistinctAcrossAttempts(t *testing.T) {
	g := NewReferenceGenerator()

	first := g.PaymentRef("REG", "REG4F2A91BC", time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC))
	second := g.PaymentRef("REG", "REG4F2A91BC", time.Date(2025, 3, 14, 9, 26, 54, 0, time.UTC))

	if first == second {
		t.Errorf("PaymentRef produced identical references for distinct attempts: %q", first)
	}
	if !strings.HasPrefix(first, "REG-REG4F2A91BC-") || !strings.HasPrefix(second, "REG-REG4F2A91BC-") {
		t.Errorf("PaymentRef references %q, %q missing the prefix-publicRef stem", first, second)
	}
}
