//go:build !integration

package usecase_test

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"card-payment-gateway/internal/domain/model"
)

// fixedClock pins "now" so expiry-sensitive tests never flake at boundaries.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// MockBank lets tests script the acquirer's answer and observe whether it was
// called at all.
type MockBank struct {
	AuthorizeFunc func(ctx context.Context, req model.AcquiringRequest) (model.AcquiringResult, error)
	Calls         int
	LastRequest   model.AcquiringRequest
}

func (m *MockBank) Name() string { return "mock-bank" }

func (m *MockBank) Authorize(ctx context.Context, req model.AcquiringRequest) (model.AcquiringResult, error) {
	m.Calls++
	m.LastRequest = req
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(ctx, req)
	}
	return model.AcquiringResult{Status: model.StatusAuthorized, AuthorizationCode: "auth-0001"}, nil
}

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
