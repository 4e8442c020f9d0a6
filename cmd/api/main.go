package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"recharge-gateway/config"
	"recharge-gateway/internal/adapter/events"
	httpHandler "recharge-gateway/internal/adapter/http/handler"
	"recharge-gateway/internal/adapter/queue"
	pgStorage "recharge-gateway/internal/adapter/storage/postgres"
	redisStorage "recharge-gateway/internal/adapter/storage/redis"
	"recharge-gateway/internal/core/ports"
	"recharge-gateway/internal/provider"
	"recharge-gateway/internal/service"
	"recharge-gateway/pkg/logger"

	"github.com/hibiken/asynq"
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
		Msg("Starting Recharge Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Initialize AMQP publisher
	publisher, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to AMQP broker")
	}
	defer publisher.Close()

	// Initialize repositories
	orderRepo := pgStorage.NewOrderRepo(pool)
	pkgRepo := pgStorage.NewPackageRepo(pool)
	settingsRepo := pgStorage.NewSettingsRepo(pool)
	walletCreditor := pgStorage.NewWalletCreditor(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	replayStore := redisStorage.NewReplayStore(rdb)

	// Initialize delayed-job scheduler
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	scheduler := queue.NewScheduler(redisOpt, log)
	defer scheduler.Close()

	// Initialize core services
	codec := service.NewSignatureCodec()
	settings := service.NewSettingsResolver(settingsRepo, cfg.Settings.CacheTTL, cfg.Server.Mode)
	directory := service.NewMerchantDirectory(settings, cfg.Settings.CacheTTL)

	// Initialize gateway providers
	notifyURL := strings.TrimRight(cfg.Gateway.NotifyBaseURL, "/") + "/api/v1/callbacks/"
	providers := []ports.GatewayProvider{
		provider.NewPayhubProvider(settings, codec, notifyURL+provider.ChannelPayhub, cfg.Gateway.Timeout, log),
	}
	if cfg.Server.Mode != "release" {
		providers = append(providers, provider.NewMockProvider(settings, codec, log))
	}
	registry := provider.NewRegistry(providers...)

	// Initialize business services
	orderSvc := service.NewOrderService(
		orderRepo, pkgRepo, walletCreditor, transactor,
		settings, directory, registry, codec,
		replayStore, scheduler, publisher,
		service.OrderLifecycleConfig{
			MerchantSkew: cfg.Callback.MerchantSkew,
			WebhookSkew:  cfg.Webhook.Skew,
			NonceTTL:     cfg.Webhook.NonceTTL,
		},
		log,
	)
	notifier := service.NewCallbackNotifier(
		orderRepo, transactor, directory, codec, scheduler,
		service.NotifierConfig{
			MaxAttempts: cfg.Callback.MaxAttempts,
			RetryDelays: cfg.Callback.RetryDelays,
			Timeout:     cfg.Callback.Timeout,
		},
		log,
	)
	sweepSvc := service.NewSweepService(orderRepo,
		service.SweepConfig{
			PendingAge: cfg.Sweep.PendingAge,
			BatchSize:  cfg.Sweep.BatchSize,
		},
		log,
	)

	// Start the task worker (callback retries + periodic sweep)
	worker, err := queue.NewWorker(redisOpt, notifier, sweepSvc, cfg.Sweep.Interval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize task worker")
	}
	if err := worker.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start task worker")
	}
	defer worker.Shutdown()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OrderSvc:       orderSvc,
		PackageRepo:    pkgRepo,
		OrderRepo:      orderRepo,
		Notifier:       notifier,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

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
