package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marcheapp/storefront/internal/domain"
)

// ErrorResponse — тело ошибки API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondDomainError переводит доменную ошибку в HTTP-статус.
func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	status, code := domainErrorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.WithError(err).Error("request failed")
		s.respondError(w, status, code, "internal server error")
		return
	}
	s.respondError(w, status, code, err.Error())
}

func domainErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrProducerNotFound),
		errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrAddressNotFound),
		errors.Is(err, domain.ErrPickupSlotNotFound),
		errors.Is(err, domain.ErrPaymentMethodNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidDeliveryMethod),
		errors.Is(err, domain.ErrMissingDeliveryTarget),
		errors.Is(err, domain.ErrMissingPayment),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrIdempotencyKeyRequired):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, domain.ErrCustomerRequired):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrProductUnavailable),
		errors.Is(err, domain.ErrOrderVersionConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrIdempotencyHashMismatch):
		return http.StatusUnprocessableEntity, "idempotency_key_reused"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
