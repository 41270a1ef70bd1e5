package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/edubase/edubase-go/internal/api/apierr"
	"github.com/edubase/edubase-go/internal/api/response"
	"github.com/edubase/edubase-go/internal/roster"
)

// maxUploadBytes caps roster uploads at 10MB
const maxUploadBytes = 10 << 20

// UploadRoster handles POST /admin/roster. Accepts a multipart "file" part
// or a raw CSV body.
func (h *Handler) UploadRoster(w http.ResponseWriter, r *http.Request) {
	body, err := uploadReader(r)
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Missing CSV file"))
		return
	}
	defer body.Close()

	students, err := roster.FromCSV(io.LimitReader(body, maxUploadBytes))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.syncer.ReplaceRoster(r.Context(), students); err != nil {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}

	response.JSON(w, http.StatusOK, response.UploadResponse{Records: len(students)})
}

// ClearRoster handles DELETE /admin/roster
func (h *Handler) ClearRoster(w http.ResponseWriter, r *http.Request) {
	if err := h.syncer.Clear(r.Context()); err != nil {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}
	response.NoContent(w)
}

func uploadReader(r *http.Request) (io.ReadCloser, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, err
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		return file, nil
	}
	return r.Body, nil
}
