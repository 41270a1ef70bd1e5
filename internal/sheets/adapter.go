package sheets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/edubase/edubase-go/internal/dependencies/clock"
	"github.com/edubase/edubase-go/internal/model"
	"github.com/edubase/edubase-go/internal/roster"
)

// shareURLPattern extracts the spreadsheet identifier from a share URL.
var shareURLPattern = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// Config holds remote sheet adapter settings
type Config struct {
	// ExportBaseURL is the base URL CSV exports are fetched from; the
	// spreadsheet ID and export path are appended to it.
	ExportBaseURL string
	Timeout       time.Duration
}

// DefaultConfig returns sensible defaults for the sheet adapter
func DefaultConfig() Config {
	return Config{
		ExportBaseURL: "https://docs.google.com/spreadsheets/d",
		Timeout:       30 * time.Second,
	}
}

// Adapter fetches a link-viewable sheet's CSV export and parses it into a
// roster. The sheet must be public; no authentication is sent.
type Adapter struct {
	cfg        Config
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
}

// New creates a new sheet adapter
func New(cfg Config, clk clock.Clock, logger *slog.Logger) *Adapter {
	return &Adapter{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		clock:      clk,
		logger:     logger.With(slog.String("component", "sheets")),
	}
}

// ValidateShareURL extracts the spreadsheet identifier from a share URL,
// failing fast before any network call when the URL has the wrong shape.
func ValidateShareURL(shareURL string) (string, error) {
	m := shareURLPattern.FindStringSubmatch(shareURL)
	if m == nil {
		return "", model.ErrInvalidSheetURL
	}
	return m[1], nil
}

// Fetch resolves a share URL to its CSV export and returns the parsed
// roster. A header-only or empty sheet yields an empty roster, not an
// error; network failures and non-2xx responses are errors.
func (a *Adapter) Fetch(ctx context.Context, shareURL string) (model.Roster, error) {
	id, err := ValidateShareURL(shareURL)
	if err != nil {
		return nil, err
	}

	// Cache-buster so a repeated fetch is never served a stale response
	exportURL := fmt.Sprintf("%s/%s/export?format=csv&t=%d", a.cfg.ExportBaseURL, id, a.clock.Now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSheetUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", model.ErrSheetUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSheetUnavailable, err)
	}

	students := parseCSV(string(body))
	a.logger.Info("fetched sheet",
		slog.String("spreadsheet_id", id),
		slog.Int("records", len(students)))
	return students, nil
}

// parseCSV is the tolerant line-oriented parse: line 0 is the header row,
// every later non-blank line is one record. Unterminated quotes are
// tolerated rather than rejected, which is why this does not use
// encoding/csv.
func parseCSV(text string) model.Roster {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return model.Roster{}
	}

	headers := splitLine(lines[0])
	for i, h := range headers {
		headers[i] = cleanHeader(h)
	}

	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitLine(line)
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = cleanCell(values[i])
			}
		}
		rows = append(rows, row)
	}

	return roster.SheetAliases.Records(rows)
}

// splitLine splits a CSV line on commas not enclosed by an odd number of
// quotes since line start, so commas inside quoted cells stay put.
func splitLine(line string) []string {
	var fields []string
	var b strings.Builder
	quotes := 0
	for _, r := range line {
		switch {
		case r == '"':
			quotes++
			b.WriteRune(r)
		case r == ',' && quotes%2 == 0:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}

func cleanHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, `"`, "")
	return strings.ReplaceAll(h, `'`, "")
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, `"`)
	return strings.TrimSuffix(v, `"`)
}
