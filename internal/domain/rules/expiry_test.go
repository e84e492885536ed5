package rules_test

import (
	"testing"
	"time"

	"card-payment-gateway/internal/domain/rules"
)

func TestNotExpired(t *testing.T) {
	// Pin "now" to June 2025 so every branch is deterministic.
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month int
		year  int
		want  bool
	}{
		{"out of range month 0 is permissive", 0, 2020, true},
		{"out of range month 13 is permissive", 13, 1999, true},
		{"negative month is permissive", -1, 2025, true},
		{"last year fails for any month", 12, 2024, false},
		{"last year fails even for december", 12, 2024, false},
		{"next year passes for any month", 1, 2026, true},
		{"current year current month passes", 6, 2025, true},
		{"current year previous month fails", 5, 2025, false},
		{"current year next month passes", 7, 2025, true},
		{"current year january fails in june", 1, 2025, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.NotExpired(now, tt.month, tt.year); got != tt.want {
				t.Errorf("NotExpired(%v, %d, %d) = %v, want %v", now, tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestNotExpired_NonUTCNowIsNormalized(t *testing.T) {
	// 2025-06-30 23:00 in UTC+2 is already July in local time but still June in UTC.
	loc := time.FixedZone("UTC+2", 2*3600)
	now := time.Date(2025, time.June, 30, 23, 0, 0, 0, loc)

	if !rules.NotExpired(now, 6, 2025) {
		t.Error("expected June 2025 card to still be valid at the end of June UTC")
	}
}
