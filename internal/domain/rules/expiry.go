// Package rules holds pure business rules shared by validation and orchestration.
package rules

import "time"

// NotExpired reports whether a card expiring at month/year is still usable at
// "now" (UTC). An out-of-range month is deliberately reported as not expired:
// rejecting bad months is the validator's job, and this rule must never be the
// source of that rejection. A card remains valid through the end of its expiry
// month.
func NotExpired(now time.Time, month, year int) bool {
	if month < 1 || month > 12 {
		return true
	}
	now = now.UTC()
	if year < now.Year() {
		return false
	}
	if year > now.Year() {
		return true
	}
	return month >= int(now.Month())
}
