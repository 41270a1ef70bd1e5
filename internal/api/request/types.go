package request

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	Role       string `json:"role"`
	Passphrase string `json:"passphrase,omitempty"`
}

// PassphraseChangeRequest is the body for POST /admin/passphrase
type PassphraseChangeRequest struct {
	NewPassphrase     string `json:"new_passphrase"`
	ConfirmPassphrase string `json:"confirm_passphrase"`
}

// RepointRequest is the body for PUT /admin/source
type RepointRequest struct {
	SheetURL string `json:"sheet_url"`
}

// InsightsRequest is the body for POST /insights
type InsightsRequest struct {
	Query string `json:"query"`
}
