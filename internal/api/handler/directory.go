package handler

import (
	"net/http"

	"github.com/edubase/edubase-go/internal/api/response"
)

// Search handles GET /students/search?q=
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	matches := h.searchService.Search(h.syncer.Roster(), query)

	response.JSON(w, http.StatusOK, response.SearchResponse{
		Query:    query,
		Count:    len(matches),
		Students: response.StudentsFromModel(matches),
	})
}

// ListStudents handles GET /admin/students with optional counsellor and
// section drill-down filters.
func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students := h.syncer.Roster()

	q := r.URL.Query()
	if counsellor := q.Get("counsellor"); counsellor != "" {
		students = h.searchService.ByCounsellor(students, counsellor)
	}
	if section := q.Get("section"); section != "" {
		students = h.searchService.BySection(students, section)
	}

	response.JSON(w, http.StatusOK, response.StudentsResponse{
		Count:    len(students),
		Students: response.StudentsFromModel(students),
	})
}

// Stats handles GET /admin/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	summary := h.statsService.Aggregate(h.syncer.Roster())
	response.JSON(w, http.StatusOK, response.StatsResponse{Summary: summary})
}
