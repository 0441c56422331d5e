package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var products = s.catalog.Products()
	if category := query.Get("category"); category != "" {
		products = s.catalog.ProductsByCategory(category)
	} else if producerID := query.Get("producer"); producerID != "" {
		products = s.catalog.ProductsByProducer(producerID)
	}

	s.respondJSON(w, http.StatusOK, toProductDTOs(products))
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.catalog.ProductByID(chi.URLParam(r, "id"))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toProductDTO(product))
}

func (s *Server) handleListProducers(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, toProducerDTOs(s.catalog.Producers()))
}

func (s *Server) handleGetProducer(w http.ResponseWriter, r *http.Request) {
	producerID := chi.URLParam(r, "id")

	producer, err := s.catalog.ProducerByID(producerID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	// Карточка производителя показывает и его товары.
	s.respondJSON(w, http.StatusOK, struct {
		producerDTO
		Products []productDTO `json:"products"`
	}{
		producerDTO: toProducerDTO(producer),
		Products:    toProductDTOs(s.catalog.ProductsByProducer(producerID)),
	})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, toCategoryDTOs(s.catalog.Categories()))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	result := s.catalog.Search(r.URL.Query().Get("q"))
	s.respondJSON(w, http.StatusOK, searchResultDTO{
		Products:   toProductDTOs(result.Products),
		Producers:  toProducerDTOs(result.Producers),
		Categories: toCategoryDTOs(result.Categories),
	})
}
