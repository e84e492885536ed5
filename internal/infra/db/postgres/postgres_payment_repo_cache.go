package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"card-payment-gateway/internal/domain/model"
	"card-payment-gateway/internal/domain/ports/repository"
	"card-payment-gateway/internal/infra/metrics"
	red "card-payment-gateway/internal/infra/redis"
)

var _ repository.PaymentRepository = (*paymentRepoCacheDecorator)(nil)

// paymentRepoCacheDecorator adds a redis read-through cache in front of the
// payment repo. Payments are immutable once written, so cached reads can never
// go stale; the TTL only bounds memory.
type paymentRepoCacheDecorator struct {
	inner repository.PaymentRepository
	cache red.Client
	ttl   time.Duration
}

func NewPaymentRepoCacheDecorator(inner repository.PaymentRepository, cache red.Client, ttl time.Duration) repository.PaymentRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &paymentRepoCacheDecorator{inner: inner, cache: cache, ttl: ttl}
}

func (d *paymentRepoCacheDecorator) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	key := fmt.Sprintf("payment:%s", id)
	val, err := d.cache.Get(ctx, key)
	if err == nil {
		var p model.Payment
		if json.Unmarshal([]byte(val), &p) == nil {
			metrics.IncCacheRequest("payment", "hit")
			return &p, nil
		}
	}

	metrics.IncCacheRequest("payment", "miss")
	p, err := d.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(p); err == nil {
		_ = d.cache.Set(ctx, key, b, d.ttl)
	}
	return p, nil
}

// Save passes through; the fresh record is primed into the cache so the
// create/get round-trip served by another node still hits.
func (d *paymentRepoCacheDecorator) Save(ctx context.Context, cmd model.PaymentCommand, status model.AcquiringStatus) (string, error) {
	id, err := d.inner.Save(ctx, cmd, status)
	if err != nil {
		return "", err
	}
	if p, err := d.inner.FindByID(ctx, id); err == nil {
		if b, err := json.Marshal(p); err == nil {
			_ = d.cache.Set(ctx, fmt.Sprintf("payment:%s", id), b, d.ttl)
		}
	}
	return id, nil
}
