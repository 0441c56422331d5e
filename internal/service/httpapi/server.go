package httpapi

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/marcheapp/storefront/internal/domain"
	"github.com/marcheapp/storefront/internal/service/cart"
	"github.com/marcheapp/storefront/internal/service/checkout"
	"github.com/marcheapp/storefront/internal/service/orders"
)

const requestTimeout = 30 * time.Second

// Server связывает REST-маршруты витрины с сервисным слоем.
type Server struct {
	catalog     domain.CatalogSource
	accounts    domain.AccountProvider
	carts       cart.Service
	checkout    checkout.Service
	orders      orders.Service
	idempotency domain.IdempotencyRepository
	logger      *log.Entry
}

// NewServer создаёт HTTP-слой витрины.
func NewServer(
	catalog domain.CatalogSource,
	accounts domain.AccountProvider,
	carts cart.Service,
	checkoutSvc checkout.Service,
	ordersSvc orders.Service,
	idempotency domain.IdempotencyRepository,
	logger *log.Entry,
) *Server {
	if logger == nil {
		logger = log.WithField("component", "httpapi")
	}
	return &Server{
		catalog:     catalog,
		accounts:    accounts,
		carts:       carts,
		checkout:    checkoutSvc,
		orders:      ordersSvc,
		idempotency: idempotency,
		logger:      logger,
	}
}

// Router собирает chi-роутер со всеми маршрутами витрины.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(s.customerMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", s.handleListProducts)
			r.Get("/products/{id}", s.handleGetProduct)
			r.Get("/producers", s.handleListProducers)
			r.Get("/producers/{id}", s.handleGetProducer)
			r.Get("/categories", s.handleListCategories)
			r.Get("/search", s.handleSearch)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.handleGetCart)
			r.Delete("/", s.handleClearCart)
			r.Post("/items", s.handleAddItem)
			r.Put("/items/{product_id}", s.handleSetQuantity)
			r.Delete("/items/{product_id}", s.handleRemoveItem)
		})

		r.Route("/account", func(r chi.Router) {
			r.Get("/addresses", s.handleListAddresses)
			r.Get("/payment-methods", s.handleListPaymentMethods)
			r.Get("/pickup-slots", s.handleListPickupSlots)
			r.Get("/favorites", s.handleListFavorites)
			r.Post("/favorites/{product_id}/toggle", s.handleToggleFavorite)
		})

		r.Post("/checkout", s.handleCheckout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", s.handleListOrders)
			r.Get("/{id}", s.handleGetOrder)
			r.Patch("/{id}/status", s.handleUpdateStatus)
		})
	})

	return r
}
