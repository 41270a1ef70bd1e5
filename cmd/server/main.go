package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/edubase/edubase-go/internal/api"
	"github.com/edubase/edubase-go/internal/factory"
	"github.com/edubase/edubase-go/internal/pointer"
	"github.com/edubase/edubase-go/internal/services/insights"
	"github.com/edubase/edubase-go/internal/services/syncer"
	redisstorage "github.com/edubase/edubase-go/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
		PointerConfig: pointer.Config{
			URL: os.Getenv("SHEET_POINTER_URL"),
		},
		InsightsConfig: insights.Config{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  os.Getenv("GEMINI_MODEL"),
		},
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Configure sync interval
	if raw := os.Getenv("SYNC_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			logger.Error("invalid SYNC_INTERVAL", slog.String("value", raw))
			os.Exit(1)
		}
		cfg.SyncConfig = syncer.Config{PollInterval: interval}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create application factory
	app, err := factory.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start the events hub
	go app.Hub.Run()
	defer app.Hub.Close()

	// Initial roster load: shared pointer, then local pointer, then cache.
	// A failed load still starts the server; the orchestrator reports the
	// degraded state and the background poll keeps retrying.
	if err := app.Syncer.Load(ctx); err != nil {
		logger.Warn("initial roster load failed", slog.String("error", err.Error()))
	}
	go app.Syncer.Run(ctx)

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		SearchService:   app.SearchService,
		StatsService:    app.StatsService,
		InsightsService: app.InsightsService,
		Syncer:          app.Syncer,
		Hub:             app.Hub,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			logger.Error("invalid PORT", slog.String("value", raw))
			os.Exit(1)
		}
		serverConfig.Port = port
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
