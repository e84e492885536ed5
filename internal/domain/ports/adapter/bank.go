package adapter

import (
	"context"

	"card-payment-gateway/internal/domain/model"
)

// AcquiringBank is the hex port for the external acquiring bank.
type AcquiringBank interface {
	Name() string

	// Authorize submits exactly one authorization attempt and maps the bank's
	// answer into the internal outcome set. A 400 or 503 from the bank is data
	// (BadRequest / Unavailable), not an error; any other non-2xx status and
	// any transport failure come back as an error.
	Authorize(ctx context.Context, req model.AcquiringRequest) (model.AcquiringResult, error)
}
