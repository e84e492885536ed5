// Package apiv1 exposes the payments API over chi.
package apiv1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"card-payment-gateway/internal/domain"
	"card-payment-gateway/internal/domain/model"
	"card-payment-gateway/internal/infra/logging"
	"card-payment-gateway/internal/infra/metrics"
	"card-payment-gateway/internal/usecase"
)

// Server handles /api/v1/payments.
type Server struct {
	payments  usecase.PaymentUseCase
	validator *usecase.PaymentValidator
	log       *zerolog.Logger
}

func NewServer(payments usecase.PaymentUseCase, validator *usecase.PaymentValidator, log *zerolog.Logger) *Server {
	return &Server{payments: payments, validator: validator, log: log}
}

// Register attaches the v1 routes to the router.
func Register(r chi.Router, s *Server) {
	r.Route("/api/v1/payments", func(r chi.Router) {
		r.Post("/", s.handleCreatePayment)
		r.Get("/{id}", s.handleGetPayment)
	})
}

// createPaymentResponse is the create envelope: identifier (empty unless
// authorized), outcome, and field failures when the outcome is Rejected.
type createPaymentResponse struct {
	ID     string                `json:"id"`
	Status model.AcquiringStatus `json:"status"`
	Errors []usecase.FieldError  `json:"errors,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	log := logging.With(r.Context(), s.log)

	var cmd model.PaymentCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	// Validation gates the whole pipeline: on any failure the caller gets
	// Rejected and the acquirer is never contacted.
	if fieldErrs := s.validator.Validate(cmd); len(fieldErrs) > 0 {
		log.Info().Int("failures", len(fieldErrs)).Msg("payment rejected by validation")
		metrics.IncPayment(string(model.StatusRejected))
		writeJSON(w, http.StatusOK, createPaymentResponse{
			ID:     "",
			Status: model.StatusRejected,
			Errors: fieldErrs,
		})
		return
	}

	receipt, err := s.payments.Create(r.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedCurrency):
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrAcquirerFailure):
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "acquiring bank unavailable"})
		default:
			log.Error().Err(err).Msg("create payment failed")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, createPaymentResponse{ID: receipt.ID, Status: receipt.Status})
}

func (s *Server) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := s.payments.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed payment id"})
			return
		}
		logging.With(r.Context(), s.log).Error().Err(err).Msg("get payment failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	// A missing record is an empty 200, not an error.
	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
