package handler

import (
	"net/http"

	"github.com/edubase/edubase-go/internal/api/response"
)

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
