package syncer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/edubase/edubase-go/internal/dependencies/clock"
	"github.com/edubase/edubase-go/internal/events"
	"github.com/edubase/edubase-go/internal/model"
	"github.com/edubase/edubase-go/internal/pointer"
	"github.com/edubase/edubase-go/internal/sheets"
	"github.com/edubase/edubase-go/internal/storage"
)

// State is the orchestrator's lifecycle state
type State string

// States
const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	// StateDegraded means the remote source failed and the roster shown is
	// the last good cached copy
	StateDegraded State = "degraded"
	// StateError means a source was configured but neither it nor the
	// cache could produce a roster
	StateError State = "error"
)

// Config holds orchestrator settings
type Config struct {
	PollInterval time.Duration
}

// DefaultConfig returns sensible defaults for the orchestrator
func DefaultConfig() Config {
	return Config{
		PollInterval: 30 * time.Second,
	}
}

// RepointResult reports the outcome of adopting a new master sheet URL
type RepointResult struct {
	Records int
	// SharedStoreSynced is false when the local repoint succeeded but the
	// shared pointer store write failed; other clients will not see the
	// new URL until a later write succeeds.
	SharedStoreSynced bool
}

// Orchestrator decides which data source to consult (shared pointer,
// remote sheet, or local cache) and reconciles results into the active
// roster. Concurrent syncs are not coordinated: the last one to resolve
// wins, which is acceptable at this domain's write frequency.
type Orchestrator struct {
	storage     storage.Storage
	sheets      *sheets.Adapter
	pointer     *pointer.Client
	broadcaster *events.Broadcaster
	clock       clock.Clock
	logger      *slog.Logger

	interval time.Duration

	mu       sync.RWMutex
	state    State
	roster   model.Roster
	sheetURL string
	lastSync time.Time
}

// New creates a new sync orchestrator
func New(
	store storage.Storage,
	sheetAdapter *sheets.Adapter,
	pointerClient *pointer.Client,
	broadcaster *events.Broadcaster,
	clk clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *Orchestrator {
	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	return &Orchestrator{
		storage:     store,
		sheets:      sheetAdapter,
		pointer:     pointerClient,
		broadcaster: broadcaster,
		clock:       clk,
		logger:      logger.With(slog.String("component", "syncer")),
		interval:    cfg.PollInterval,
		state:       StateIdle,
		roster:      model.Roster{},
	}
}

// Load performs the startup sequence: shared pointer, then local pointer,
// then cached roster. It is the only entry point that flips into the
// blocking loading state.
func (o *Orchestrator) Load(ctx context.Context) error {
	o.setState(StateLoading)
	return o.loadOnce(ctx)
}

// Refresh silently repeats the pointer-then-fetch sequence. It never blocks
// the directory on a spinner once a roster is loaded; failures fall back to
// the cached roster without surfacing to users.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	if len(o.Roster()) == 0 {
		o.setState(StateLoading)
	}
	return o.loadOnce(ctx)
}

// Run polls the shared pointer and sheet on a fixed interval until ctx is
// cancelled.
func (o *Orchestrator) Run(ctx context.Context) {
	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	o.logger.Info("background sync started", slog.Duration("interval", o.interval))
	for {
		select {
		case <-ctx.Done():
			o.logger.Info("background sync stopped")
			return
		case <-ticker.C:
			if err := o.Refresh(ctx); err != nil {
				o.logger.Warn("background refresh failed", slog.Any("error", err))
			}
		}
	}
}

// Sync is the explicit user-initiated re-check. Unlike the background
// poll it surfaces fetch errors, so the user knows the sync did not
// happen, and it requires a configured source.
func (o *Orchestrator) Sync(ctx context.Context) (int, error) {
	url, ok := o.resolveSheetURL(ctx)
	if !ok {
		return 0, model.ErrNoDataSource
	}

	students, err := o.sheets.Fetch(ctx, url)
	if err != nil {
		return 0, err
	}

	o.adopt(ctx, url, students)
	return len(students), nil
}

// Repoint validates and adopts a new master sheet URL. The local pointer is
// saved before the shared store write, so local usability never depends on
// the store being reachable.
func (o *Orchestrator) Repoint(ctx context.Context, shareURL string) (RepointResult, error) {
	if _, err := sheets.ValidateShareURL(shareURL); err != nil {
		return RepointResult{}, err
	}

	if err := o.storage.SaveSheetURL(ctx, shareURL); err != nil {
		return RepointResult{}, err
	}
	o.broadcaster.PointerUpdated(shareURL)

	synced := true
	if err := o.pointer.Write(ctx, shareURL); err != nil {
		o.logger.Warn("shared pointer write failed after local repoint", slog.Any("error", err))
		synced = false
	}

	students, err := o.sheets.Fetch(ctx, shareURL)
	if err != nil {
		return RepointResult{SharedStoreSynced: synced}, err
	}

	o.adopt(ctx, shareURL, students)
	return RepointResult{Records: len(students), SharedStoreSynced: synced}, nil
}

// ReplaceRoster adopts a locally ingested roster, e.g. from a file upload
func (o *Orchestrator) ReplaceRoster(ctx context.Context, students model.Roster) error {
	if err := o.storage.SaveRoster(ctx, students); err != nil {
		return err
	}
	o.setRoster(students, o.SheetURL(), StateReady)
	o.broadcaster.RosterUpdated(len(students))
	return nil
}

// Clear empties both the cached and the active roster
func (o *Orchestrator) Clear(ctx context.Context) error {
	if err := o.storage.ClearRoster(ctx); err != nil {
		return err
	}
	o.setRoster(model.Roster{}, o.SheetURL(), StateReady)
	o.broadcaster.RosterUpdated(0)
	return nil
}

// Roster returns the active record list
func (o *Orchestrator) Roster() model.Roster {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.roster
}

// State returns the current lifecycle state
func (o *Orchestrator) State() State {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

// SheetURL returns the sheet URL the active roster was loaded from, if any
func (o *Orchestrator) SheetURL() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.sheetURL
}

// LastSync returns when the roster was last replaced from a remote fetch
func (o *Orchestrator) LastSync() time.Time {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.lastSync
}

func (o *Orchestrator) loadOnce(ctx context.Context) error {
	url, ok := o.resolveSheetURL(ctx)
	if !ok {
		// Nothing configured: serve whatever the cache has, or an empty
		// roster on a fresh install. Neither is an error.
		cached, err := o.storage.GetRoster(ctx)
		if err != nil {
			cached = model.Roster{}
		}
		o.setRoster(cached, "", StateReady)
		return nil
	}

	students, err := o.sheets.Fetch(ctx, url)
	if err == nil {
		o.adopt(ctx, url, students)
		return nil
	}

	o.logger.Warn("sheet fetch failed, falling back to cached roster",
		slog.String("sheet_url", url),
		slog.Any("error", err))

	cached, cacheErr := o.storage.GetRoster(ctx)
	if cacheErr == nil {
		o.setRoster(cached, url, StateDegraded)
		return nil
	}

	o.setRoster(model.Roster{}, url, StateError)
	return err
}

// resolveSheetURL prefers the shared pointer and converges the local
// pointer on it; an unreachable store falls back to the local pointer.
func (o *Orchestrator) resolveSheetURL(ctx context.Context) (string, bool) {
	if url, ok := o.pointer.Read(ctx); ok {
		if err := o.storage.SaveSheetURL(ctx, url); err != nil {
			o.logger.Warn("failed to save sheet url locally", slog.Any("error", err))
		}
		return url, true
	}

	url, err := o.storage.GetSheetURL(ctx)
	if err != nil {
		return "", false
	}
	return url, true
}

// adopt replaces the active roster with a freshly fetched one and writes
// it through to the cache.
func (o *Orchestrator) adopt(ctx context.Context, url string, students model.Roster) {
	if err := o.storage.SaveRoster(ctx, students); err != nil {
		o.logger.Warn("failed to cache roster", slog.Any("error", err))
	}

	o.mu.Lock()
	o.roster = students
	o.sheetURL = url
	o.state = StateReady
	o.lastSync = o.clock.Now()
	o.mu.Unlock()

	o.broadcaster.RosterUpdated(len(students))
}

func (o *Orchestrator) setRoster(students model.Roster, url string, state State) {
	o.mu.Lock()
	o.roster = students
	o.sheetURL = url
	o.state = state
	o.mu.Unlock()
}

func (o *Orchestrator) setState(state State) {
	o.mu.Lock()
	o.state = state
	o.mu.Unlock()
}
