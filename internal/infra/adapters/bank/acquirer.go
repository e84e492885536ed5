// Package bank implements the acquiring-bank port over HTTP.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"card-payment-gateway/internal/domain/model"
	"card-payment-gateway/internal/domain/ports/adapter"
	"card-payment-gateway/internal/infra/metrics"
)

var _ adapter.AcquiringBank = (*AcquirerClient)(nil)

// AcquirerClient posts authorization requests to the acquiring bank's
// simulator endpoint and maps its responses to the internal outcome set.
type AcquirerClient struct {
	baseURL string
	path    string
	client  *http.Client
}

// bankResponse is the acquirer's wire answer.
type bankResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

func NewAcquirerClient(baseURL, path string, timeout time.Duration) (*AcquirerClient, error) {
	if baseURL == "" {
		return nil, errors.New("acquirer base url empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid acquirer base url: %w", err)
	}
	if path == "" {
		path = "/payments"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AcquirerClient{
		baseURL: baseURL,
		path:    path,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (c *AcquirerClient) Name() string { return "acquirer" }

// Authorize issues exactly one POST per invocation. No retries, no
// idempotency key: a transport failure leaves the attempt in an unknown state
// on the bank side and is surfaced as an error.
func (c *AcquirerClient) Authorize(ctx context.Context, req model.AcquiringRequest) (model.AcquiringResult, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return model.AcquiringResult{}, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.path, bytes.NewReader(b))
	if err != nil {
		return model.AcquiringResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		metrics.ObserveAcquirerCall(c.Name(), 0, float64(time.Since(start).Milliseconds()))
		return model.AcquiringResult{}, fmt.Errorf("acquirer request: %w", err)
	}
	defer resp.Body.Close()
	metrics.ObserveAcquirerCall(c.Name(), resp.StatusCode, float64(time.Since(start).Milliseconds()))

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return model.AcquiringResult{Status: model.StatusBadRequest}, nil
	case resp.StatusCode == http.StatusServiceUnavailable:
		return model.AcquiringResult{Status: model.StatusUnavailable}, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		// Anything else non-2xx is a hard failure, never downgraded to a decline.
		return model.AcquiringResult{}, fmt.Errorf("acquirer: unexpected status %d", resp.StatusCode)
	}

	var body bankResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		// A 2xx with an unreadable body counts as a decline.
		return model.AcquiringResult{Status: model.StatusDeclined}, nil
	}
	if !body.Authorized {
		return model.AcquiringResult{Status: model.StatusDeclined}, nil
	}
	return model.AcquiringResult{
		Status:            model.StatusAuthorized,
		AuthorizationCode: body.AuthorizationCode,
	}, nil
}
