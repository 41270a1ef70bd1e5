package model

import "errors"

// Common errors used across the application
var (
	// Cache errors
	ErrRosterNotCached  = errors.New("no roster cached")
	ErrSheetURLNotSet   = errors.New("no sheet url saved")
	ErrPassphraseNotSet = errors.New("admin passphrase not set")

	// Source errors
	ErrInvalidSheetURL  = errors.New("invalid sheet share url")
	ErrSheetUnavailable = errors.New("sheet fetch failed")
	ErrNoDataSource     = errors.New("no data source configured")

	// Ingest errors
	ErrMalformedTable = errors.New("malformed table")
)
