package main

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"receipt-tracker/internal/cache"
	"receipt-tracker/internal/config"
	"receipt-tracker/internal/database"
	"receipt-tracker/internal/events"
	"receipt-tracker/internal/handlers"
	"receipt-tracker/internal/middleware"
	"receipt-tracker/internal/models"
	"receipt-tracker/internal/repositories"
	"receipt-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	instanceID := uuid.New().String()
	logger.Info("Starting receipt-tracker",
		"environment", cfg.Server.Environment,
		"instance_id", instanceID,
	)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mappingCache := cache.NewMerchantMapCache(cache.Config{
		TTL:           cfg.Cache.TTL,
		MaxSize:       cfg.Cache.MaxSize,
		SweepInterval: cfg.Cache.SweepInterval,
	})
	mappingCache.Start(ctx)
	defer mappingCache.Stop()

	var publisher services.InvalidationPublisherInterface
	var amqpClient *events.Client
	if cfg.AMQP.Enabled() {
		amqpClient, err = events.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue, logger)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		publisher = amqpClient
	} else {
		logger.Info("Cross-instance invalidation disabled - no AMQP_URL provided")
	}

	mappingService := services.NewMerchantMappingService(
		repositories.NewMerchantMappingRepository(db.DB),
		mappingCache,
		services.NewCategorizationMerger(cfg.Learning.ConfidenceBoost),
		services.NewCircuitBreaker(services.CircuitBreakerConfig{
			MaxFailures:     cfg.Learning.StoreMaxFailures,
			ResetTimeout:    cfg.Learning.StoreResetTimeout,
			HalfOpenMaxSucc: cfg.Learning.StoreHalfOpenProbes,
		}),
		services.NewPrometheusMetrics(nil),
		services.NewLearningLogger(logger),
		publisher,
		instanceID,
	)

	if amqpClient != nil {
		go func() {
			err := amqpClient.Run(ctx, func(ctx context.Context, event models.MappingInvalidation) error {
				err := mappingService.HandleInvalidation(ctx, event)
				if stderrors.Is(err, services.ErrInvalidInvalidation) {
					return stderrors.Join(events.ErrDiscard, err)
				}
				return err
			})
			if err != nil && !stderrors.Is(err, context.Canceled) {
				logger.Error("Invalidation consumer stopped", "error", err)
			}
		}()
	}

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	defer rateLimiter.Stop()

	e := newServer(cfg, db, mappingService, rateLimiter)

	go func() {
		addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
		logger.Info("HTTP server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	cancel()

	logger.Info("receipt-tracker stopped")
}

func newServer(
	cfg *config.Config,
	db *database.DB,
	mappingService services.MerchantMappingServiceInterface,
	rateLimiter *middleware.RateLimiter,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	healthHandler := handlers.NewHealthCheckHandler(db)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	categorizationHandler := handlers.NewCategorizationHandler(mappingService)
	mappingHandler := handlers.NewMappingHandler(mappingService, cfg.Learning.SuggestionLimit)
	cacheHandler := handlers.NewCacheHandler(mappingService)

	api := e.Group("/api/v1",
		middleware.TenantAuth([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer),
		rateLimiter.Middleware(),
	)

	api.POST("/categorizations", categorizationHandler.CategorizeReceipt)

	mappings := api.Group("/mappings")
	mappings.GET("", mappingHandler.ListMappings)
	mappings.GET("/lookup", mappingHandler.LookupMapping)
	mappings.GET("/suggestions", mappingHandler.SuggestMappings)
	mappings.PUT("", mappingHandler.UpdateMapping)
	mappings.DELETE("", mappingHandler.DeleteMapping)
	mappings.DELETE("/all", mappingHandler.ResetMappings)

	api.GET("/cache/stats", cacheHandler.GetStats)
	api.DELETE("/cache", cacheHandler.ClearCache, middleware.RequireAdmin())

	return e
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
