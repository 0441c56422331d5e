package httpapi

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/marcheapp/storefront/internal/domain"
	"github.com/marcheapp/storefront/internal/service/checkout"
)

const maxCheckoutBodySize = 1 << 20 // 1MB

type checkoutRequest struct {
	Method          string `json:"method"`
	AddressID       string `json:"address_id,omitempty"`
	PickupSlotID    string `json:"pickup_slot_id,omitempty"`
	PaymentMethodID string `json:"payment_method_id"`
	Note            string `json:"note,omitempty"`
}

// handleCheckout оформляет заказ. Заголовок Idempotency-Key защищает
// от дублей при сетевых ретраях: повтор с тем же ключом и телом
// получает сохранённый ответ вместо второго заказа.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxCheckoutBodySize))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "failed to read request body")
		return
	}

	var req checkoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	customerID := customerIDFromContext(r.Context())
	key := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if key == "" {
		status, payload := s.placeOrder(customerID, req)
		s.respondJSON(w, status, payload)
		return
	}

	requestHash := checkoutRequestHash(customerID, body)
	record, err := s.idempotency.CreateProcessing(key, requestHash, time.Time{})
	switch {
	case errors.Is(err, domain.ErrIdempotencyHashMismatch):
		s.respondDomainError(w, err)
		return
	case errors.Is(err, domain.ErrIdempotencyKeyAlreadyExists):
		if record.Status == domain.IdempotencyStatusProcessing {
			s.respondError(w, http.StatusConflict, "request_in_flight", "request with this idempotency key is still processing")
			return
		}
		s.replayStoredResponse(w, record)
		return
	case err != nil:
		s.respondDomainError(w, err)
		return
	}

	status, payload := s.placeOrder(customerID, req)

	stored, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		s.logger.WithError(marshalErr).Error("failed to marshal checkout response")
		s.respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	markErr := error(nil)
	if status < http.StatusBadRequest {
		markErr = s.idempotency.MarkDone(key, stored, status)
	} else {
		markErr = s.idempotency.MarkFailed(key, stored, status)
	}
	if markErr != nil {
		s.logger.WithError(markErr).WithField("idempotency_key", key).Warn("failed to store idempotency result")
	}

	s.respondJSON(w, status, payload)
}

// placeOrder выполняет оформление и возвращает HTTP-статус с готовым
// к сериализации телом ответа.
func (s *Server) placeOrder(customerID string, req checkoutRequest) (int, interface{}) {
	order, err := s.checkout.PlaceOrder(customerID, checkout.PlaceOrderInput{
		Method:          domain.DeliveryMethod(req.Method),
		AddressID:       req.AddressID,
		SlotID:          req.PickupSlotID,
		PaymentMethodID: req.PaymentMethodID,
		Note:            req.Note,
	})
	if err != nil {
		status, code := domainErrorStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.WithError(err).Error("checkout failed")
			return status, ErrorResponse{Error: "internal server error", Code: code}
		}
		return status, ErrorResponse{Error: err.Error(), Code: code}
	}

	view, err := s.orders.Get(order.ID)
	if err != nil {
		// Заказ сохранён, но view собрать не удалось; отдаём снимок без timeline.
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to load placed order view")
		return http.StatusCreated, toOrderDTO(order, domain.Project(order.Status, order.Method), nil)
	}

	return http.StatusCreated, toOrderViewDTO(view)
}

func (s *Server) replayStoredResponse(w http.ResponseWriter, record domain.IdempotencyRecord) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Idempotency-Replayed", "true")
	w.WriteHeader(record.HTTPStatus)
	if _, err := w.Write(record.ResponseBody); err != nil {
		s.logger.WithError(err).Error("failed to write replayed response")
	}
}

func checkoutRequestHash(customerID string, body []byte) string {
	digest := sha256.New()
	digest.Write([]byte(customerID))
	digest.Write([]byte{0})
	digest.Write(body)
	return hex.EncodeToString(digest.Sum(nil))
}
