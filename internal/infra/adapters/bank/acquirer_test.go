package bank_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"card-payment-gateway/internal/domain/model"
	"card-payment-gateway/internal/infra/adapters/bank"
)

func request() model.AcquiringRequest {
	return model.AcquiringRequest{
		CardNumber: "1234567890123456",
		ExpiryDate: "12/2031",
		Currency:   "USD",
		Amount:     1000,
		CVV:        "123",
	}
}

func newClient(t *testing.T, srv *httptest.Server) *bank.AcquirerClient {
	t.Helper()
	c, err := bank.NewAcquirerClient(srv.URL, "/payments", 5*time.Second)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return c
}

func TestAcquirerClient_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("authorized response carries the authorization code", func(t *testing.T) {
		var gotBody model.AcquiringRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/payments" {
				t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
			}
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"authorized":         true,
				"authorization_code": "abc-123",
			})
		}))
		defer srv.Close()

		res, err := newClient(t, srv).Authorize(ctx, request())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != model.StatusAuthorized || res.AuthorizationCode != "abc-123" {
			t.Errorf("got %+v", res)
		}
		if gotBody.CardNumber != "1234567890123456" || gotBody.ExpiryDate != "12/2031" {
			t.Errorf("wire body mismatch: %+v", gotBody)
		}
	})

	t.Run("authorized false is a decline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"authorized": false})
		}))
		defer srv.Close()

		res, err := newClient(t, srv).Authorize(ctx, request())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != model.StatusDeclined {
			t.Errorf("expected Declined, got %s", res.Status)
		}
	})

	t.Run("unreadable 2xx body is a decline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		res, err := newClient(t, srv).Authorize(ctx, request())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != model.StatusDeclined {
			t.Errorf("expected Declined, got %s", res.Status)
		}
	})

	t.Run("400 maps to BadRequest without error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		res, err := newClient(t, srv).Authorize(ctx, request())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != model.StatusBadRequest {
			t.Errorf("expected BadRequest, got %s", res.Status)
		}
	})

	t.Run("503 maps to Unavailable without error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		res, err := newClient(t, srv).Authorize(ctx, request())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != model.StatusUnavailable {
			t.Errorf("expected Unavailable, got %s", res.Status)
		}
	})

	t.Run("other non-2xx statuses are hard failures", func(t *testing.T) {
		for _, status := range []int{http.StatusUnauthorized, http.StatusInternalServerError, http.StatusBadGateway} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))
			_, err := newClient(t, srv).Authorize(ctx, request())
			srv.Close()
			if err == nil {
				t.Errorf("status %d: expected an error, got none", status)
			}
		}
	})

	t.Run("unreachable bank is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // shut down before calling

		if _, err := newClient(t, srv).Authorize(ctx, request()); err == nil {
			t.Error("expected a transport error")
		}
	})

	t.Run("exactly one call per invocation", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, _ = newClient(t, srv).Authorize(ctx, request())
		if calls != 1 {
			t.Errorf("expected exactly 1 call, got %d", calls)
		}
	})
}

func TestNewAcquirerClient_Validation(t *testing.T) {
	if _, err := bank.NewAcquirerClient("", "/payments", time.Second); err == nil {
		t.Error("expected error for empty base url")
	}
}
