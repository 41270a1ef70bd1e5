package middleware

import (
	"log/slog"
	"net/http"

	"github.com/edubase/edubase-go/internal/api/apierr"
)

// Recovery converts handler panics into a JSON internal error response
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("handler panic",
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
					)
					apierr.WriteError(w, apierr.NewInternalError())
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
