package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "freightbid/internal/app"
	"freightbid/internal/handlers/rest/bid_history_get"
	"freightbid/internal/handlers/rest/driver_assign_post"
	"freightbid/internal/handlers/rest/driver_bid_delete"
	"freightbid/internal/handlers/rest/driver_bid_post"
	"freightbid/internal/handlers/rest/driver_bids_get"
	"freightbid/internal/handlers/rest/find_drivers_status_get"
	"freightbid/internal/handlers/rest/freight_bid_cancel_post"
	"freightbid/internal/handlers/rest/freight_bid_delete"
	"freightbid/internal/handlers/rest/freight_bid_get"
	"freightbid/internal/handlers/rest/freight_bid_post"
	"freightbid/internal/handlers/rest/freight_bid_put"
	"freightbid/internal/handlers/rest/healthcheck_head"
	"freightbid/internal/handlers/rest/ping_get"
	"freightbid/internal/pkg/authctx"
	"freightbid/internal/pkg/config"
	"freightbid/internal/pkg/dotenv"
	metrics_system "freightbid/internal/pkg/metrics"
	"freightbid/internal/pkg/middlewares/auth"
	"freightbid/internal/pkg/middlewares/graceful_shutdown"
	"freightbid/internal/pkg/middlewares/metrics"
	"freightbid/internal/pkg/middlewares/rate_limiter"
	"freightbid/internal/pkg/middlewares/timeout"
	"freightbid/internal/pkg/postgres"
	"freightbid/internal/pkg/redisconn"
	"freightbid/pkg/logger"
	"freightbid/pkg/logger/zap_adapter"
	"freightbid/pkg/token_bucket"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting freight-bid application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redisconn.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close redis connection",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// защищенные маршруты
	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware(log, cfg.Auth.JWTSecret))

	customerOnly := auth.RequireRole(authctx.RoleCustomer)
	driverOnly := auth.RequireRole(authctx.RoleDriver)

	api.Handle("/freight-bids", customerOnly(freight_bid_post.New(log, app.ServiceFreightBid))).Methods("POST")
	api.Handle("/freight-bids/{id}", freight_bid_get.New(log, app.ServiceQuery)).Methods("GET")
	api.Handle("/freight-bids/{id}", customerOnly(freight_bid_put.New(log, app.ServiceFreightBid))).Methods("PUT")
	api.Handle("/freight-bids/{id}", customerOnly(freight_bid_delete.New(log, app.ServiceFreightBid))).Methods("DELETE")
	api.Handle("/freight-bids/{id}/cancel", customerOnly(freight_bid_cancel_post.New(log, app.ServiceFreightBid))).Methods("POST")

	api.Handle("/freight-bids/{id}/driver-bids", driverOnly(driver_bid_post.New(log, app.ServiceDriverBid))).Methods("POST")
	api.Handle("/freight-bids/{id}/driver-bids", driver_bids_get.New(log, app.ServiceDriverBid)).Methods("GET")
	api.Handle("/driver-bids/{id}", driverOnly(driver_bid_delete.New(log, app.ServiceDriverBid))).Methods("DELETE")

	api.Handle("/freight-bids/{id}/assign", customerOnly(driver_assign_post.New(log, app.ServiceMatching))).Methods("POST")
	api.Handle("/freight-bids/{id}/find-drivers-status", find_drivers_status_get.New(log, app.ServiceMatching)).Methods("GET")
	api.Handle("/bid-history", customerOnly(bid_history_get.New(log, app.ServiceQuery))).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
