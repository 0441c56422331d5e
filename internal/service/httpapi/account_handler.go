package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	addresses := s.accounts.Addresses(customerIDFromContext(r.Context()))

	out := make([]addressDTO, 0, len(addresses))
	for _, addr := range addresses {
		out = append(out, toAddressDTO(addr))
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods := s.accounts.PaymentMethods(customerIDFromContext(r.Context()))

	out := make([]paymentMethodDTO, 0, len(methods))
	for _, method := range methods {
		out = append(out, toPaymentMethodDTO(method))
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleListPickupSlots(w http.ResponseWriter, r *http.Request) {
	slots := s.accounts.PickupSlots()

	out := make([]pickupSlotDTO, 0, len(slots))
	for _, slot := range slots {
		out = append(out, toPickupSlotDTO(slot))
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites := s.accounts.Favorites(customerIDFromContext(r.Context()))
	if favorites == nil {
		favorites = []string{}
	}
	s.respondJSON(w, http.StatusOK, map[string][]string{"product_ids": favorites})
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if _, err := s.catalog.ProductByID(productID); err != nil {
		s.respondDomainError(w, err)
		return
	}

	favorite := s.accounts.ToggleFavorite(customerIDFromContext(r.Context()), productID)
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"product_id": productID,
		"favorite":   favorite,
	})
}
