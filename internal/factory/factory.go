package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/edubase/edubase-go/internal/dependencies/clock"
	"github.com/edubase/edubase-go/internal/events"
	"github.com/edubase/edubase-go/internal/pointer"
	"github.com/edubase/edubase-go/internal/services/auth"
	"github.com/edubase/edubase-go/internal/services/insights"
	"github.com/edubase/edubase-go/internal/services/search"
	"github.com/edubase/edubase-go/internal/services/stats"
	"github.com/edubase/edubase-go/internal/services/syncer"
	"github.com/edubase/edubase-go/internal/sheets"
	"github.com/edubase/edubase-go/internal/storage"
	"github.com/edubase/edubase-go/internal/storage/memory"
	redisstorage "github.com/edubase/edubase-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Adapters
	SheetAdapter  *sheets.Adapter
	PointerClient *pointer.Client

	// Events
	Hub         *events.Hub
	Broadcaster *events.Broadcaster

	// Services
	AuthService     *auth.Service
	SearchService   *search.Service
	StatsService    *stats.Service
	InsightsService *insights.Service
	Syncer          *syncer.Orchestrator
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AuthConfig holds configuration for the auth service (optional)
	AuthConfig auth.Config
	// SheetConfig holds settings for the sheet CSV adapter (optional)
	SheetConfig sheets.Config
	// PointerConfig holds settings for the shared pointer store. An empty
	// URL disables the shared store entirely.
	PointerConfig pointer.Config
	// SyncConfig holds sync orchestrator settings (optional)
	SyncConfig syncer.Config
	// InsightsConfig holds settings for the insights service. An empty
	// API key disables it.
	InsightsConfig insights.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	insightsService, err := insights.New(ctx, cfg.InsightsConfig, logger)
	if err != nil {
		return nil, err
	}

	sheetAdapter := sheets.New(cfg.SheetConfig, clk, logger)
	pointerClient := pointer.New(cfg.PointerConfig, clk, logger)

	hub := events.NewHub(logger)
	broadcaster := events.NewBroadcaster(hub, logger)

	orchestrator := syncer.New(store, sheetAdapter, pointerClient, broadcaster, clk, cfg.SyncConfig, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		SheetAdapter:    sheetAdapter,
		PointerClient:   pointerClient,
		Hub:             hub,
		Broadcaster:     broadcaster,
		AuthService:     auth.New(store, clk, authCfg),
		SearchService:   search.New(),
		StatsService:    stats.New(),
		InsightsService: insightsService,
		Syncer:          orchestrator,
	}, nil
}
