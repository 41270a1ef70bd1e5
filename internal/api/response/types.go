package response

import (
	"github.com/edubase/edubase-go/internal/model"
	"github.com/edubase/edubase-go/internal/services/stats"
)

// Student is the API representation of a directory record
type Student struct {
	ID         string `json:"id"`
	RegNo      string `json:"reg_no"`
	Name       string `json:"name"`
	Phone1     string `json:"phone1,omitempty"`
	Phone2     string `json:"phone2,omitempty"`
	Counsellor string `json:"counsellor"`
	Year       string `json:"year,omitempty"`
	Section    string `json:"section,omitempty"`
	Branch     string `json:"branch"`
}

// StudentFromModel converts a model student to its API representation.
// Missing grouping fields are rendered with their display labels so the
// client never has to special-case blanks.
func StudentFromModel(s model.Student) Student {
	return Student{
		ID:         s.ID,
		RegNo:      s.RegNo,
		Name:       s.Name,
		Phone1:     s.Phone1,
		Phone2:     s.Phone2,
		Counsellor: s.CounsellorLabel(),
		Year:       s.Year,
		Section:    s.Section,
		Branch:     s.BranchLabel(),
	}
}

// StudentsFromModel converts a roster preserving order
func StudentsFromModel(students model.Roster) []Student {
	out := make([]Student, 0, len(students))
	for _, s := range students {
		out = append(out, StudentFromModel(s))
	}
	return out
}

// LoginResponse is the response for POST /auth/login
type LoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at"`
}

// SearchResponse is the response for GET /students/search
type SearchResponse struct {
	Query    string    `json:"query"`
	Count    int       `json:"count"`
	Students []Student `json:"students"`
}

// StudentsResponse is the response for GET /admin/students
type StudentsResponse struct {
	Count    int       `json:"count"`
	Students []Student `json:"students"`
}

// StatsResponse is the response for GET /admin/stats
type StatsResponse struct {
	Summary stats.Summary `json:"summary"`
}

// SourceResponse is the response for GET /admin/source
type SourceResponse struct {
	SheetURL string `json:"sheet_url,omitempty"`
	State    string `json:"state"`
	LastSync string `json:"last_sync,omitempty"`
	Records  int    `json:"records"`
}

// RepointResponse is the response for PUT /admin/source
type RepointResponse struct {
	SheetURL          string `json:"sheet_url"`
	Records           int    `json:"records"`
	SharedStoreSynced bool   `json:"shared_store_synced"`
}

// SyncResponse is the response for POST /admin/sync
type SyncResponse struct {
	Records int `json:"records"`
}

// UploadResponse is the response for POST /admin/roster
type UploadResponse struct {
	Records int `json:"records"`
}

// InsightsResponse is the response for POST /insights
type InsightsResponse struct {
	Query   string `json:"query"`
	Count   int    `json:"count"`
	Summary string `json:"summary"`
}

// HealthResponse is the response for GET /health
type HealthResponse struct {
	Status string `json:"status"`
}
