package model_test

import (
	"testing"

	"card-payment-gateway/internal/domain/model"
)

func TestNormalizedCardNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"spaces stripped", "1234 5678 9012 3456", "1234567890123456"},
		{"dashes stripped", "1234-5678-9012-3456", "1234567890123456"},
		{"already normalized is unchanged", "1234567890123456", "1234567890123456"},
		{"mixed separators", "1234 5678-9012 3456", "1234567890123456"},
		{"blank input", "   ", ""},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := model.PaymentCommand{CardNumber: tt.raw}
			if got := cmd.NormalizedCardNumber(); got != tt.want {
				t.Errorf("NormalizedCardNumber(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizedCardNumber_Idempotent(t *testing.T) {
	first := model.PaymentCommand{CardNumber: "1234 5678-9012 3456"}.NormalizedCardNumber()
	second := model.PaymentCommand{CardNumber: first}.NormalizedCardNumber()
	if first != second {
		t.Errorf("normalization not idempotent: %q then %q", first, second)
	}
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		month, year int
		want        string
	}{
		{1, 2026, "01/2026"},
		{12, 2030, "12/2030"},
		{9, 999, "09/0999"},
	}
	for _, tt := range tests {
		if got := model.FormatExpiry(tt.month, tt.year); got != tt.want {
			t.Errorf("FormatExpiry(%d, %d) = %q, want %q", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestLastFour(t *testing.T) {
	if got := model.LastFour("1234567890123456"); got != "3456" {
		t.Errorf("LastFour = %q, want %q", got, "3456")
	}
	if got := model.LastFour("123"); got != "123" {
		t.Errorf("LastFour on short input = %q, want %q", got, "123")
	}
}
