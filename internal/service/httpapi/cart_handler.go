package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := s.carts.Get(customerIDFromContext(r.Context()))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toCartDTO(cart))
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		s.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := s.carts.Add(customerIDFromContext(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, toCartDTO(cart))
}

func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity < 0 {
		s.respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not be negative")
		return
	}

	cart, err := s.carts.SetQuantity(customerIDFromContext(r.Context()), productID, req.Quantity)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toCartDTO(cart))
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := s.carts.Remove(customerIDFromContext(r.Context()), chi.URLParam(r, "product_id"))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toCartDTO(cart))
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := s.carts.Clear(customerIDFromContext(r.Context()))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toCartDTO(cart))
}
