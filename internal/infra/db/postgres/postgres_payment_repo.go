package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"card-payment-gateway/internal/domain"
	"card-payment-gateway/internal/domain/model"
	"card-payment-gateway/internal/domain/ports/repository"
)

var _ repository.PaymentRepository = (*paymentRepo)(nil)

type paymentRepo struct{ pool *pgxpool.Pool }

func NewPaymentRepo(pool *pgxpool.Pool) *paymentRepo {
	return &paymentRepo{pool: pool}
}

// Save records an authorization outcome. Only the last four PAN digits are
// stored; the CVV never leaves the command.
func (r *paymentRepo) Save(ctx context.Context, cmd model.PaymentCommand, status model.AcquiringStatus) (string, error) {
	const q = `
INSERT INTO payments (id, status, card_last4, expiry_month, expiry_year, currency, amount, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8);`

	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, q,
		id,
		string(status),
		model.LastFour(cmd.NormalizedCardNumber()),
		cmd.ExpiryMonth,
		cmd.ExpiryYear,
		cmd.Currency,
		cmd.Amount,
		time.Now().UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", domain.ErrAlreadyExists
		}
		return "", fmt.Errorf("postgres save payment: %w", err)
	}
	return id, nil
}

func (r *paymentRepo) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	const q = `
SELECT id, status, card_last4, expiry_month, expiry_year, currency, amount, created_at
FROM payments
WHERE id = $1;`

	p := &model.Payment{}
	var status string
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &status, &p.CardLast4, &p.ExpiryMonth, &p.ExpiryYear, &p.Currency, &p.Amount, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("postgres find payment: %w", err)
	}
	p.Status = model.AcquiringStatus(status)
	return p, nil
}
