//go:build !integration

package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"card-payment-gateway/internal/domain"
	"card-payment-gateway/internal/domain/model"
	"card-payment-gateway/internal/infra/db/memory"
	pg "card-payment-gateway/internal/infra/db/postgres"
	red "card-payment-gateway/internal/infra/redis"
)

// fakeCache implements red.Client in memory so the decorator can be tested
// without a redis instance.
type fakeCache struct {
	mu     sync.Mutex
	values map[string]string
	gets   int
	sets   int
}

func newFakeCache() *fakeCache { return &fakeCache{values: map[string]string{}} }

func (f *fakeCache) Ping(context.Context) error { return nil }

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	switch v := value.(type) {
	case string:
		f.values[key] = v
	case []byte:
		f.values[key] = string(v)
	}
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	v, ok := f.values[key]
	if !ok {
		return "", red.Nil
	}
	return v, nil
}

func (f *fakeCache) Incr(context.Context, string) (int64, error)         { return 0, nil }
func (f *fakeCache) Expire(context.Context, string, time.Duration) error { return nil }
func (f *fakeCache) Del(context.Context, ...string) error                { return nil }
func (f *fakeCache) Close() error                                        { return nil }

// countingRepo wraps the memory repo to observe pass-through reads.
type countingRepo struct {
	inner *memory.PaymentRepo
	finds int
}

func (c *countingRepo) Save(ctx context.Context, cmd model.PaymentCommand, status model.AcquiringStatus) (string, error) {
	return c.inner.Save(ctx, cmd, status)
}

func (c *countingRepo) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	c.finds++
	return c.inner.FindByID(ctx, id)
}

func command() model.PaymentCommand {
	return model.PaymentCommand{
		CardNumber:  "1234567890123456",
		ExpiryMonth: 12,
		ExpiryYear:  2031,
		Currency:    "USD",
		Amount:      1000,
		CVV:         "123",
	}
}

func TestPaymentRepoCacheDecorator(t *testing.T) {
	ctx := context.Background()

	t.Run("save primes the cache so reads skip the store", func(t *testing.T) {
		inner := &countingRepo{inner: memory.NewPaymentRepo()}
		cache := newFakeCache()
		repo := pg.NewPaymentRepoCacheDecorator(inner, cache, time.Hour)

		id, err := repo.Save(ctx, command(), model.StatusAuthorized)
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		primingFinds := inner.finds

		p, err := repo.FindByID(ctx, id)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if p.CardLast4 != "3456" {
			t.Errorf("unexpected record: %+v", p)
		}
		if inner.finds != primingFinds {
			t.Errorf("expected cached read, inner saw %d extra finds", inner.finds-primingFinds)
		}
	})

	t.Run("miss falls through and populates the cache", func(t *testing.T) {
		mem := memory.NewPaymentRepo()
		id, _ := mem.Save(ctx, command(), model.StatusAuthorized)
		inner := &countingRepo{inner: mem}
		repo := pg.NewPaymentRepoCacheDecorator(inner, newFakeCache(), time.Hour)

		if _, err := repo.FindByID(ctx, id); err != nil {
			t.Fatalf("first read: %v", err)
		}
		if inner.finds != 1 {
			t.Fatalf("expected one store read, got %d", inner.finds)
		}

		if _, err := repo.FindByID(ctx, id); err != nil {
			t.Fatalf("second read: %v", err)
		}
		if inner.finds != 1 {
			t.Errorf("second read should hit the cache, store saw %d reads", inner.finds)
		}
	})

	t.Run("not-found passes through untouched", func(t *testing.T) {
		inner := &countingRepo{inner: memory.NewPaymentRepo()}
		repo := pg.NewPaymentRepoCacheDecorator(inner, newFakeCache(), time.Hour)

		_, err := repo.FindByID(ctx, "missing-id")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
