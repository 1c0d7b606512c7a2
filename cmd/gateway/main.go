package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"casino-wallet-gateway/config"
	httpHandler "casino-wallet-gateway/internal/adapter/http/handler"
	"casino-wallet-gateway/internal/adapter/notify"
	"casino-wallet-gateway/internal/adapter/provider"
	pgStorage "casino-wallet-gateway/internal/adapter/storage/postgres"
	redisStorage "casino-wallet-gateway/internal/adapter/storage/redis"
	"casino-wallet-gateway/internal/core/ports"
	"casino-wallet-gateway/internal/service"
	"casino-wallet-gateway/pkg/logger"
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
		Msg("Starting Casino Wallet Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize stores
	accountRepo := pgStorage.NewAccountRepo(pool)
	dedupRepo := pgStorage.NewDedupRepo(pool)
	dedupCache := redisStorage.NewDedupCache(rdb)

	// Initialize notification sinks
	httpClient := &http.Client{Timeout: cfg.Notify.HTTPTimeout}
	sinks := []ports.Notifier{redisStorage.NewPublisher(rdb)}
	if cfg.Notify.CRMBaseURL != "" {
		sinks = append(sinks, notify.NewCRMSink(cfg.Notify.CRMBaseURL, cfg.Notify.CRMTokenSecret, cfg.Notify.CRMTokenTTL, httpClient))
	}
	if cfg.Notify.SlackWebhookURL != "" {
		sinks = append(sinks, notify.NewSlackSink(cfg.Notify.SlackWebhookURL, httpClient))
	}
	notifier := notify.NewMulti(logger.Component(log, "notify"), sinks...)

	// Initialize payment stack
	providers := provider.NewRegistryFromConfig(cfg.Payment, httpClient, logger.Component(log, "provider"))
	router := service.NewCountryRouter(cfg.Payment)
	orchestrator := service.NewFailoverOrchestrator(router, providers, notifier, cfg.Payment.RetryDelays, logger.Component(log, "orchestrator"))

	// Initialize risk stack
	riskMonitor := service.NewHeuristicRiskMonitor(accountRepo, cfg.Risk, logger.Component(log, "risk"))
	dispatcher := service.NewNotifyingDispatcher(notifier, logger.Component(log, "intervention"))
	defer dispatcher.Flush()

	// Initialize the wallet engine
	walletSvc := service.NewWalletService(
		accountRepo,
		dedupRepo,
		dedupCache,
		orchestrator,
		riskMonitor,
		dispatcher,
		notifier,
		logger.Component(log, "wallet"),
	)
	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router (operational surface only)
	ginRouter := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: ginRouter,
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
