package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/marcheapp/storefront/internal/domain"
	healthcheck "github.com/marcheapp/storefront/internal/health"
	"github.com/marcheapp/storefront/internal/storage/memory"
	"github.com/marcheapp/storefront/internal/storage/postgres"
)

// runtimeDependencies собирает хранилища, выбранные по конфигурации.
// Корзины всегда живут в памяти: это сессионное состояние, которое не
// обязано переживать рестарт.
type runtimeDependencies struct {
	carts          domain.CartStore
	orders         domain.OrderRepository
	timeline       domain.TimelineRepository
	idempotency    domain.IdempotencyRepository
	storageChecker healthcheck.Checker
	closeFn        func() error
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (runtimeDependencies, error) {
	deps := runtimeDependencies{
		carts: memory.NewCartStore(),
	}

	switch cfg.StorageDriver {
	case StorageDriverMemory, "":
		deps.orders = memory.NewOrderRepository()
		deps.timeline = memory.NewTimelineRepository()
		deps.idempotency = memory.NewIdempotencyRepository()
		logger.Info("используется in-memory хранилище")
		return deps, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return runtimeDependencies{}, fmt.Errorf("postgres storage driver requires a DSN")
		}

		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return runtimeDependencies{}, fmt.Errorf("open postgres: %w", err)
		}

		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				_ = store.Close()
				return runtimeDependencies{}, fmt.Errorf("apply postgres migrations: %w", err)
			}
			logger.Info("postgres миграции применены")
		}

		deps.orders = postgres.NewOrderRepository(store)
		deps.timeline = postgres.NewTimelineRepository(store)
		deps.idempotency = postgres.NewIdempotencyRepository(store)
		deps.storageChecker = healthcheck.NewPingChecker("postgres", 2*time.Second, store.Ping)
		deps.closeFn = store.Close
		logger.Info("используется postgres хранилище")
		return deps, nil

	default:
		return runtimeDependencies{}, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}
