package model

// SheetPointer is the single shared configuration cell naming the current
// authoritative sheet URL. It is stored as one JSON document in the shared
// pointer store; last write wins across all clients.
type SheetPointer struct {
	ActiveSheetURL string `json:"active_sheet_url"`
	LastUpdated    string `json:"last_updated,omitempty"`
}
