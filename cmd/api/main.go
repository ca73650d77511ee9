package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charity-mandate-gateway/config"
	"charity-mandate-gateway/internal/adapter/catalog"
	httpHandler "charity-mandate-gateway/internal/adapter/http/handler"
	memStorage "charity-mandate-gateway/internal/adapter/storage/memory"
	redisStorage "charity-mandate-gateway/internal/adapter/storage/redis"
	"charity-mandate-gateway/internal/core/ports"
	"charity-mandate-gateway/internal/service"
	"charity-mandate-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("session_backend", cfg.Session.Backend).
		Msg("Starting Charity Mandate Gateway")

	ctx := context.Background()

	// Select the session backend. Redis enables multi-node deployments
	// and rate limiting; memory suits a single node and development.
	var (
		store          ports.MandateStore
		rateLimitStore *redisStorage.RateLimitStore
		healthCheckers []ports.HealthChecker
	)
	switch cfg.Session.Backend {
	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		store = redisStorage.NewMandateStore(rdb, cfg.Session.TTL)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	case "memory":
		store = memStorage.NewMandateStore()
		healthCheckers = append(healthCheckers, memStorage.NewHealthChecker())
		log.Warn().Msg("In-memory session backend selected; sessions will not survive a restart")
	default:
		log.Fatal().Str("backend", cfg.Session.Backend).Msg("Unknown session backend")
	}

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT secret is required (set CMG_JWT_SECRET)")
	}

	// Initialize core services
	sigSvc := service.NewCanonicalSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize pipeline stages
	intentSvc := service.NewIntentService(store, cfg.Pipeline.IntentTTL, log)
	offerSvc := service.NewOfferService(store, sigSvc, cfg.Pipeline.CartTTL, log)
	consentGate := service.NewConsentGate(store, log)
	paymentSvc := service.NewPaymentService(store, log)
	auditSvc := service.NewAuditService(store, sigSvc, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		IntentSvc:      intentSvc,
		OfferSvc:       offerSvc,
		ConsentSvc:     consentGate,
		PaymentSvc:     paymentSvc,
		AuditSvc:       auditSvc,
		Catalog:        catalog.NewStaticCatalog(),
		TokenSvc:       tokenSvc,
		Store:          store,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
