package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/locallinkhq/locallink-backend/api/routes"
	"github.com/locallinkhq/locallink-backend/internal/bookings"
	"github.com/locallinkhq/locallink-backend/internal/inventory"
	"github.com/locallinkhq/locallink-backend/internal/orders"
	"github.com/locallinkhq/locallink-backend/internal/products"
	"github.com/locallinkhq/locallink-backend/internal/services"
	"github.com/locallinkhq/locallink-backend/internal/vendors"
	"github.com/locallinkhq/locallink-backend/pkg/config"
	"github.com/locallinkhq/locallink-backend/pkg/db"
	"github.com/locallinkhq/locallink-backend/pkg/logger"
	"github.com/locallinkhq/locallink-backend/pkg/metrics"
	"github.com/locallinkhq/locallink-backend/pkg/migrate"
	pkgredis "github.com/locallinkhq/locallink-backend/pkg/redis"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "locallink-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		return fmt.Errorf("connecting database: %w", err)
	}
	defer dbClient.Close()

	redisClient, err := pkgredis.New(ctx, cfg.Redis, logg)
	if err != nil {
		return fmt.Errorf("connecting redis: %w", err)
	}
	defer redisClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return fmt.Errorf("auto migrations: %w", err)
	}

	conn := dbClient.DB()
	lifecycleMetrics := metrics.NewLifecycleMetrics(prometheus.DefaultRegisterer)

	vendorRepo := vendors.NewRepository(conn)

	orderSvc, err := orders.NewService(orders.NewRepository(conn), dbClient, inventory.NewAdjuster(),
		orders.WithLifecycleMetrics(lifecycleMetrics))
	if err != nil {
		return fmt.Errorf("building order service: %w", err)
	}
	bookingSvc, err := bookings.NewService(bookings.NewRepository(conn), dbClient,
		bookings.WithLifecycleMetrics(lifecycleMetrics))
	if err != nil {
		return fmt.Errorf("building booking service: %w", err)
	}
	productSvc, err := products.NewService(products.NewRepository(conn))
	if err != nil {
		return fmt.Errorf("building product service: %w", err)
	}
	serviceSvc, err := services.NewService(services.NewRepository(conn))
	if err != nil {
		return fmt.Errorf("building service catalog: %w", err)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	handler := routes.New(routes.Deps{
		Config:      cfg,
		Logger:      logg,
		Orders:      orderSvc,
		Bookings:    bookingSvc,
		Products:    productSvc,
		Services:    serviceSvc,
		Vendors:     vendorRepo,
		Idempotency: redisClient,
		HTTPMetrics: httpMetrics,
		DBPinger:    dbClient,
		CachePinger: redisClient,
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info(ctx, fmt.Sprintf("http server listening on :%s", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logg.Info(ctx, "shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logg.Info(ctx, "server stopped")
	return nil
}
