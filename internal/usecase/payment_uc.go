package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"card-payment-gateway/internal/domain"
	"card-payment-gateway/internal/domain/model"
	"card-payment-gateway/internal/domain/ports/adapter"
	"card-payment-gateway/internal/domain/ports/repository"
	"card-payment-gateway/internal/infra/logging"
	"card-payment-gateway/internal/infra/metrics"
)

// Compile-time check
var _ PaymentUseCase = (*paymentUC)(nil)

type PaymentUseCase interface {
	// Create runs the authorization pipeline for an already validated command:
	// currency gate, one acquirer call, persist on Authorized. A non-Authorized
	// acquirer outcome is returned as data with an empty identifier.
	Create(ctx context.Context, cmd model.PaymentCommand) (*model.PaymentReceipt, error)
	// Get looks up a recorded payment. A missing record is an empty result,
	// not an error; a malformed identifier is domain.ErrInvalidArgument.
	Get(ctx context.Context, id string) (*model.PaymentRecord, error)
}

type paymentUC struct {
	payments   repository.PaymentRepository
	currencies repository.CurrencyRepository
	bank       adapter.AcquiringBank
	log        *zerolog.Logger
}

func NewPaymentUseCase(payments repository.PaymentRepository, currencies repository.CurrencyRepository, bank adapter.AcquiringBank, log *zerolog.Logger) *paymentUC {
	return &paymentUC{payments: payments, currencies: currencies, bank: bank, log: log}
}

func (u *paymentUC) Create(ctx context.Context, cmd model.PaymentCommand) (*model.PaymentReceipt, error) {
	log := logging.With(ctx, u.log)

	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	supported, err := u.currencies.IsSupported(ctx, currency)
	if err != nil {
		return nil, err
	}
	if !supported {
		// An unsupported currency is a configuration problem, not a decline.
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, currency)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Note: idempotency keys would be needed in production to prevent duplicate
	// charges on client retries; omitted here.
	req := model.AcquiringRequest{
		CardNumber: cmd.NormalizedCardNumber(),
		ExpiryDate: model.FormatExpiry(cmd.ExpiryMonth, cmd.ExpiryYear),
		Currency:   currency,
		Amount:     cmd.Amount,
		CVV:        cmd.CVV,
	}

	res, err := u.bank.Authorize(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("bank", u.bank.Name()).Msg("acquirer call failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrAcquirerFailure, err)
	}
	metrics.IncPayment(string(res.Status))

	if res.Status != model.StatusAuthorized {
		log.Info().Str("status", string(res.Status)).Msg("payment not authorized")
		return &model.PaymentReceipt{ID: "", Status: res.Status}, nil
	}

	id, err := u.payments.Save(ctx, cmd, res.Status)
	if err != nil {
		return nil, err
	}
	metrics.AddPaymentAmount(currency, cmd.Amount)
	log.Info().
		Str("payment_id", id).
		Str("card", logging.MaskPAN(cmd.NormalizedCardNumber())).
		Str("currency", currency).
		Int64("amount", cmd.Amount).
		Msg("payment authorized")
	return &model.PaymentReceipt{ID: id, Status: res.Status}, nil
}

func (u *paymentUC) Get(ctx context.Context, id string) (*model.PaymentRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: malformed payment id", domain.ErrInvalidArgument)
	}
	p, err := u.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &model.PaymentRecord{}, nil
		}
		return nil, err
	}
	// The envelope status for any found record is Authorized, regardless of the
	// record's own stored status. That mirrors the original behaviour; the
	// record itself still carries its stored status.
	return &model.PaymentRecord{Status: model.StatusAuthorized, Payment: p}, nil
}
