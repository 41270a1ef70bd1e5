package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/edubase/edubase-go/internal/api/apierr"
	"github.com/edubase/edubase-go/internal/services/auth"
)

type contextKey string

const sessionContextKey contextKey = "session"

const sessionCookieName = "session"

// Auth validates the bearer token (or session cookie) and attaches the
// session to the request context.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			session, err := authService.ValidateSession(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects sessions without the admin role. Must run after Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := GetSession(r.Context())
		if !ok {
			apierr.WriteError(w, apierr.NewUnauthorizedError())
			return
		}
		if !session.IsAdmin() {
			apierr.WriteError(w, apierr.NewForbiddenError())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSession retrieves the session from the request context
func GetSession(ctx context.Context) (*auth.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*auth.Session)
	return session, ok
}

// MustGetSession retrieves the session from the request context, panicking
// if absent. Only call from handlers behind the Auth middleware.
func MustGetSession(ctx context.Context) *auth.Session {
	session, ok := GetSession(ctx)
	if !ok {
		panic("session not found in context")
	}
	return session
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	// EventSource cannot set headers, so SSE clients authenticate with a
	// cookie instead.
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
