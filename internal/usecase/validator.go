package usecase

import (
	"regexp"

	"card-payment-gateway/internal/domain/model"
	"card-payment-gateway/internal/domain/ports/adapter"
	"card-payment-gateway/internal/domain/rules"
)

var (
	reCardNumber = regexp.MustCompile(`^\d{14,19}$`)
	reCurrency   = regexp.MustCompile(`^[A-Za-z]{3}$`)
	reCVV        = regexp.MustCompile(`^\d{3,4}$`)
)

// FieldError is a single validation failure, addressed to the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PaymentValidator checks a create-payment command before the pipeline runs.
// Every field is evaluated (no cross-field short-circuit); within a field the
// first failing rule wins. It never performs I/O: whether the currency is
// actually supported is a separate gate inside the use case.
type PaymentValidator struct {
	clock adapter.Clock
}

func NewPaymentValidator(clock adapter.Clock) *PaymentValidator {
	return &PaymentValidator{clock: clock}
}

// Validate returns zero or more field failures. Card-number rules run against
// the raw field, so separators are rejected here even though the orchestrator
// would strip them.
func (v *PaymentValidator) Validate(cmd model.PaymentCommand) []FieldError {
	var errs []FieldError
	now := v.clock.Now().UTC()

	switch {
	case cmd.CardNumber == "":
		errs = append(errs, FieldError{"card_number", "Card Number cannot be empty."})
	case !reCardNumber.MatchString(cmd.CardNumber):
		errs = append(errs, FieldError{"card_number", "Card Number must be numeric and between 14 and 19 digits."})
	}

	if cmd.ExpiryMonth < 1 || cmd.ExpiryMonth > 12 {
		errs = append(errs, FieldError{"expiry_month", "Expiry Month must be between 1 and 12."})
	}
	if cmd.ExpiryYear < now.Year() {
		errs = append(errs, FieldError{"expiry_year", "Expiry Year must be the current year or later."})
	}
	// Independent whole-request check on top of the range rules above.
	if !rules.NotExpired(now, cmd.ExpiryMonth, cmd.ExpiryYear) {
		errs = append(errs, FieldError{"expiry", "Card expiry must be in the future."})
	}

	switch {
	case cmd.Currency == "":
		errs = append(errs, FieldError{"currency", "Currency is required."})
	case !reCurrency.MatchString(cmd.Currency):
		errs = append(errs, FieldError{"currency", "Currency must be a 3-letter ISO code."})
	}

	if cmd.Amount <= 0 {
		errs = append(errs, FieldError{"amount", "Amount must be greater than 0 (minor currency units)."})
	}

	switch {
	case cmd.CVV == "":
		errs = append(errs, FieldError{"cvv", "CVV is required."})
	case !reCVV.MatchString(cmd.CVV):
		errs = append(errs, FieldError{"cvv", "CVV must be numeric and 3 to 4 digits long."})
	}

	return errs
}
