package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/marcheapp/storefront/internal/account"
	"github.com/marcheapp/storefront/internal/catalog"
	"github.com/marcheapp/storefront/internal/domain"
	healthcheck "github.com/marcheapp/storefront/internal/health"
	"github.com/marcheapp/storefront/internal/service/cart"
	"github.com/marcheapp/storefront/internal/service/checkout"
	"github.com/marcheapp/storefront/internal/service/httpapi"
	idemsvc "github.com/marcheapp/storefront/internal/service/idempotency"
	"github.com/marcheapp/storefront/internal/service/orders"
	"github.com/marcheapp/storefront/internal/version"
)

// Run запускает витрину: REST API, сервер метрик и фоновую очистку
// идемпотентных ключей. Блокируется до отмены контекста или ошибки.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if deps.closeFn != nil {
			if closeErr := deps.closeFn(); closeErr != nil {
				logger.WithError(closeErr).Warn("failed to close storage")
			}
		}
	}()

	catalogSrc := catalog.NewSeeded()
	accounts := account.NewSeeded()

	kafkaProducer, _ := initKafkaProducer(cfg.KafkaBrokers, logger)
	defer closeKafkaProducer(kafkaProducer, logger)

	// Интерфейс должен остаться nil, если producer не создан.
	var publisher domain.EventPublisher
	if kafkaProducer != nil {
		publisher = kafkaProducer
	}

	cartSvc := cart.NewService(deps.carts, catalogSrc, logger.WithField("layer", "cart"))
	checkoutSvc := checkout.NewService(
		deps.carts,
		deps.orders,
		deps.timeline,
		accounts,
		publisher,
		logger.WithField("layer", "checkout"),
	)
	ordersSvc := orders.NewService(
		deps.orders,
		deps.timeline,
		publisher,
		logger.WithField("layer", "orders"),
	)

	apiServer := httpapi.NewServer(
		catalogSrc,
		accounts,
		cartSvc,
		checkoutSvc,
		ordersSvc,
		deps.idempotency,
		logger.WithField("layer", "httpapi"),
	)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	healthHandler.RegisterChecker("catalog", healthcheck.NewSimpleChecker("catalog", func() error {
		if len(catalogSrc.Products()) == 0 {
			return errors.New("catalog is empty")
		}
		return nil
	}))
	if deps.storageChecker != nil {
		healthHandler.RegisterChecker("storage", deps.storageChecker)
	}

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	// Фоновая очистка протухших идемпотентных ключей.
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	cleanupWorker := idemsvc.NewCleanupWorker(
		deps.idempotency,
		idemsvc.WithLogger(logger.WithField("layer", "idempotency-cleanup")),
		idemsvc.WithInterval(cfg.IdempotencyCleanupInterval),
		idemsvc.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
	)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		cleanupWorker.Run(workerCtx)
	}()

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apiServer.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP сервер слушает %s", cfg.HTTPAddr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем HTTP сервер")
		shutdownHTTP(httpSrv, logger)
		shutdownHTTP(metricsSrv, logger)
		stopWorker()
		<-workerDone
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		stopWorker()
		<-workerDone
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
