package pointer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/edubase/edubase-go/internal/dependencies/clock"
	"github.com/edubase/edubase-go/internal/model"
)

// Config holds shared pointer store settings
type Config struct {
	// URL is the fixed address of the shared JSON document. Empty disables
	// the store: reads report absent and writes become no-ops.
	URL     string
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for the pointer store client
func DefaultConfig() Config {
	return Config{
		Timeout: 10 * time.Second,
	}
}

// Client reads and writes the shared sheet pointer document. The store is a
// bare key-value endpoint with no access control; authorization is enforced
// by whoever is allowed to call Write, not here.
type Client struct {
	cfg        Config
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
}

// New creates a new pointer store client
func New(cfg Config, clk clock.Clock, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		clock:      clk,
		logger:     logger.With(slog.String("component", "pointer")),
	}
}

// Read fetches the current shared pointer, bypassing HTTP caching so a
// write made moments earlier by another client is observed. An unreachable
// or empty store reports absent, not an error, so callers can fall back to
// a local pointer.
func (c *Client) Read(ctx context.Context) (string, bool) {
	if c.cfg.URL == "" {
		return "", false
	}

	readURL := fmt.Sprintf("%s?nocache=%d", c.cfg.URL, c.clock.Now().UnixMilli())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, readURL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("shared pointer store unreachable", slog.Any("error", err))
		return "", false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("shared pointer read rejected", slog.Int("status", resp.StatusCode))
		return "", false
	}

	var doc model.SheetPointer
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		c.logger.Warn("shared pointer document malformed", slog.Any("error", err))
		return "", false
	}
	if doc.ActiveSheetURL == "" {
		return "", false
	}
	return doc.ActiveSheetURL, true
}

// Write persists sheetURL as the new shared pointer, overwriting any
// previous value. Last write wins; there is no optimistic concurrency
// check. Errors surface to the caller for user notification, but callers
// save the pointer locally first so local usability never depends on this.
func (c *Client) Write(ctx context.Context, sheetURL string) error {
	if c.cfg.URL == "" {
		return nil
	}

	doc := model.SheetPointer{
		ActiveSheetURL: sheetURL,
		LastUpdated:    c.clock.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("shared pointer write failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("shared pointer write failed: status %d", resp.StatusCode)
	}

	c.logger.Info("shared pointer updated", slog.String("sheet_url", sheetURL))
	return nil
}
