package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/edubase/edubase-go/internal/api/apierr"
	"github.com/edubase/edubase-go/internal/api/middleware"
	"github.com/edubase/edubase-go/internal/api/request"
	"github.com/edubase/edubase-go/internal/api/response"
	"github.com/edubase/edubase-go/internal/services/auth"
)

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	session, err := h.authService.Login(r.Context(), auth.Role(req.Role), req.Passphrase)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	// Cookie auth backs the SSE stream, which cannot set a bearer header
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.JSON(w, http.StatusOK, response.LoginResponse{
		Token:     session.Token,
		Role:      string(session.Role),
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	h.authService.Logout(session.Token)
	response.NoContent(w)
}

// ChangePassphrase handles POST /admin/passphrase
func (h *Handler) ChangePassphrase(w http.ResponseWriter, r *http.Request) {
	var req request.PassphraseChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.NewPassphrase != req.ConfirmPassphrase {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Passphrases do not match"))
		return
	}

	if err := h.authService.ChangePassphrase(r.Context(), req.NewPassphrase); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.NoContent(w)
}
