package search

import (
	"strings"

	"github.com/edubase/edubase-go/internal/model"
)

// Service performs free-text roster search and the admin drill-down
// filters. All operations are pure functions over the supplied roster.
type Service struct{}

// New creates a new search service
func New() *Service {
	return &Service{}
}

// Search returns the records where the query appears as a substring of any
// searchable field, preserving roster order. Name, regNo, counsellor,
// branch, section and year are matched case-insensitively; phone numbers
// are matched as raw substrings. An empty or whitespace-only query matches
// nothing: the directory never dumps the full roster by default.
func (s *Service) Search(students model.Roster, query string) model.Roster {
	q := strings.TrimSpace(query)
	if q == "" {
		return model.Roster{}
	}
	lower := strings.ToLower(q)

	matches := make(model.Roster, 0)
	for _, st := range students {
		if matchesQuery(st, q, lower) {
			matches = append(matches, st)
		}
	}
	return matches
}

// ByCounsellor returns the records assigned to the given counsellor. The
// Unassigned label selects records with no counsellor set.
func (s *Service) ByCounsellor(students model.Roster, counsellor string) model.Roster {
	matches := make(model.Roster, 0)
	for _, st := range students {
		if st.CounsellorLabel() == counsellor {
			matches = append(matches, st)
		}
	}
	return matches
}

// BySection returns the records whose year-branch-section key equals key.
func (s *Service) BySection(students model.Roster, key string) model.Roster {
	matches := make(model.Roster, 0)
	for _, st := range students {
		if st.SectionKey() == key {
			matches = append(matches, st)
		}
	}
	return matches
}

func matchesQuery(st model.Student, raw, lower string) bool {
	for _, f := range []string{st.Name, st.RegNo, st.Counsellor, st.Branch, st.Section, st.Year} {
		if f != "" && strings.Contains(strings.ToLower(f), lower) {
			return true
		}
	}
	// Phone numbers are not case-folded
	return (st.Phone1 != "" && strings.Contains(st.Phone1, raw)) ||
		(st.Phone2 != "" && strings.Contains(st.Phone2, raw))
}
