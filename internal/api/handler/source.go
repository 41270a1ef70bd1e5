package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/edubase/edubase-go/internal/api/apierr"
	"github.com/edubase/edubase-go/internal/api/request"
	"github.com/edubase/edubase-go/internal/api/response"
)

// GetSource handles GET /admin/source
func (h *Handler) GetSource(w http.ResponseWriter, r *http.Request) {
	resp := response.SourceResponse{
		SheetURL: h.syncer.SheetURL(),
		State:    string(h.syncer.State()),
		Records:  len(h.syncer.Roster()),
	}
	if last := h.syncer.LastSync(); !last.IsZero() {
		resp.LastSync = last.Format(time.RFC3339)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Repoint handles PUT /admin/source
func (h *Handler) Repoint(w http.ResponseWriter, r *http.Request) {
	var req request.RepointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.SheetURL == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("sheet_url is required"))
		return
	}

	result, err := h.syncer.Repoint(r.Context(), req.SheetURL)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RepointResponse{
		SheetURL:          req.SheetURL,
		Records:           result.Records,
		SharedStoreSynced: result.SharedStoreSynced,
	})
}

// Sync handles POST /admin/sync
func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	records, err := h.syncer.Sync(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SyncResponse{Records: records})
}
