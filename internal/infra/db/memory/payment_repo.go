// Package memory holds the in-memory payment repository used by tests and
// dev mode. Reads reflect all completed writes within the process; nothing
// survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"card-payment-gateway/internal/domain"
	"card-payment-gateway/internal/domain/model"
	"card-payment-gateway/internal/domain/ports/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

type PaymentRepo struct {
	mu    sync.RWMutex
	store map[string]*model.Payment
}

func NewPaymentRepo() *PaymentRepo {
	return &PaymentRepo{store: make(map[string]*model.Payment)}
}

// NewSeededPaymentRepo returns a repo pre-loaded with the well-known demo
// records, so a dev instance answers lookups out of the box. Each call builds
// an independent instance.
func NewSeededPaymentRepo() *PaymentRepo {
	r := NewPaymentRepo()
	for _, p := range SeedPayments() {
		cp := p
		r.store[cp.ID] = &cp
	}
	return r
}

// SeedPayments lists the demo records shared by dev mode and the seed tool.
func SeedPayments() []model.Payment {
	return []model.Payment{
		{
			ID:          "11111111-1111-1111-1111-111111111111",
			Status:      model.StatusAuthorized,
			CardLast4:   "4242",
			ExpiryMonth: 12,
			ExpiryYear:  2026,
			Currency:    "GBP",
			Amount:      1050,
		},
		{
			ID:          "22222222-2222-2222-2222-222222222222",
			Status:      model.StatusDeclined,
			CardLast4:   "1234",
			ExpiryMonth: 6,
			ExpiryYear:  2025,
			Currency:    "USD",
			Amount:      2500,
		},
		{
			ID:          "33333333-3333-3333-3333-333333333333",
			Status:      model.StatusAuthorized,
			CardLast4:   "9876",
			ExpiryMonth: 3,
			ExpiryYear:  2027,
			Currency:    "EUR",
			Amount:      199,
		},
	}
}

func (r *PaymentRepo) Save(_ context.Context, cmd model.PaymentCommand, status model.AcquiringStatus) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := &model.Payment{
		ID:          uuid.NewString(),
		Status:      status,
		CardLast4:   model.LastFour(cmd.NormalizedCardNumber()),
		ExpiryMonth: cmd.ExpiryMonth,
		ExpiryYear:  cmd.ExpiryYear,
		Currency:    cmd.Currency,
		Amount:      cmd.Amount,
		CreatedAt:   time.Now().UTC(),
	}
	r.store[p.ID] = p
	return p.ID, nil
}

func (r *PaymentRepo) FindByID(_ context.Context, id string) (*model.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// Len reports how many records the repo holds. Test helper.
func (r *PaymentRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}
