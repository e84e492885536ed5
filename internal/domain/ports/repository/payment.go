package repository

import (
	"context"

	"card-payment-gateway/internal/domain/model"
)

// PaymentRepository is the port for payment persistence.
type PaymentRepository interface {
	// Save persists the outcome of an authorization attempt, deriving the
	// card's last four digits from the command. It assigns a fresh identifier
	// and returns it; identifiers are unique even under concurrent saves.
	Save(ctx context.Context, cmd model.PaymentCommand, status model.AcquiringStatus) (string, error)
	// FindByID returns domain.ErrNotFound when no record exists for id.
	FindByID(ctx context.Context, id string) (*model.Payment, error)
}
