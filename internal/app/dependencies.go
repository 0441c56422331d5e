package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/marcheapp/storefront/internal/account"
	"github.com/marcheapp/storefront/internal/catalog"
	"github.com/marcheapp/storefront/internal/domain"
	"github.com/marcheapp/storefront/internal/storage/memory"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Catalog     domain.CatalogSource
	Accounts    domain.AccountProvider
	Carts       domain.CartStore
	Orders      domain.OrderRepository
	Timeline    domain.TimelineRepository
	Idempotency domain.IdempotencyRepository
	Logger      *log.Entry
}

// NewDependencies создаёт in-memory набор зависимостей с посевными
// данными каталога и аккаунта. Используется в тестах и демо-режиме.
func NewDependencies(logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	return &Dependencies{
		Catalog:     catalog.NewSeeded(),
		Accounts:    account.NewSeeded(),
		Carts:       memory.NewCartStore(),
		Orders:      memory.NewOrderRepository(),
		Timeline:    memory.NewTimelineRepository(),
		Idempotency: memory.NewIdempotencyRepository(),
		Logger:      logger,
	}
}
