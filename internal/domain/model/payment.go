package model

import (
	"fmt"
	"strings"
	"time"
)

// AcquiringStatus is the closed set of outcomes a payment attempt can end in.
type AcquiringStatus string

const (
	StatusAuthorized  AcquiringStatus = "Authorized"  // 2xx + authorized: true
	StatusDeclined    AcquiringStatus = "Declined"    // 2xx + authorized: false or unreadable body
	StatusRejected    AcquiringStatus = "Rejected"    // failed validation; bank never called
	StatusBadRequest  AcquiringStatus = "BadRequest"  // acquirer returned 400
	StatusUnavailable AcquiringStatus = "Unavailable" // acquirer returned 503
)

// PaymentCommand is the inbound create-payment request. The raw card number may
// contain spaces or dashes; validation runs against the raw value, the acquirer
// receives the normalized one. Neither the full PAN nor the CVV is ever stored.
type PaymentCommand struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	CVV         string `json:"cvv"`
}

// NormalizedCardNumber strips spaces and dashes. Idempotent.
func (c PaymentCommand) NormalizedCardNumber() string {
	if strings.TrimSpace(c.CardNumber) == "" {
		return ""
	}
	n := strings.ReplaceAll(c.CardNumber, " ", "")
	return strings.ReplaceAll(n, "-", "")
}

// AcquiringRequest is the wire shape sent to the acquiring bank. One per attempt.
type AcquiringRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"` // MM/YYYY
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

// FormatExpiry renders a month/year pair the way the acquirer expects it.
func FormatExpiry(month, year int) string {
	return fmt.Sprintf("%02d/%04d", month, year)
}

// AcquiringResult is the bank's answer mapped into the internal outcome set.
// AuthorizationCode is only set when the bank authorized the charge.
type AcquiringResult struct {
	Status            AcquiringStatus
	AuthorizationCode string
}

// Payment is the persisted record of an authorized attempt. The repository
// assigns the ID at creation; records are immutable afterwards.
type Payment struct {
	ID          string          `json:"id"`
	Status      AcquiringStatus `json:"status"`
	CardLast4   string          `json:"card_last4"`
	ExpiryMonth int             `json:"expiry_month"`
	ExpiryYear  int             `json:"expiry_year"`
	Currency    string          `json:"currency"`
	Amount      int64           `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LastFour returns the trailing four digits of an already validated PAN.
func LastFour(pan string) string {
	if len(pan) < 4 {
		return pan
	}
	return pan[len(pan)-4:]
}

// PaymentReceipt is the create-payment response envelope: an identifier (empty
// unless the attempt was authorized and persisted) plus the outcome.
type PaymentReceipt struct {
	ID     string          `json:"id"`
	Status AcquiringStatus `json:"status"`
}

// PaymentRecord is the get-payment response envelope. A nil Payment with an
// empty Status means "no such payment" and is not an error.
type PaymentRecord struct {
	Status  AcquiringStatus `json:"status,omitempty"`
	Payment *Payment        `json:"payment,omitempty"`
}
