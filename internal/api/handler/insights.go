package handler

import (
	"encoding/json"
	"net/http"

	"github.com/edubase/edubase-go/internal/api/apierr"
	"github.com/edubase/edubase-go/internal/api/request"
	"github.com/edubase/edubase-go/internal/api/response"
)

// Insights handles POST /insights. The summary is generated from the
// records matching the query; model failures degrade to a fallback
// message rather than an error.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	var req request.InsightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Query == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("query is required"))
		return
	}

	matches := h.searchService.Search(h.syncer.Roster(), req.Query)
	summary := h.insightsService.Summarize(r.Context(), matches, req.Query)

	response.JSON(w, http.StatusOK, response.InsightsResponse{
		Query:   req.Query,
		Count:   len(matches),
		Summary: summary,
	})
}
