package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/edubase/edubase-go/internal/api/handler"
	"github.com/edubase/edubase-go/internal/api/middleware"
	"github.com/edubase/edubase-go/internal/events"
	"github.com/edubase/edubase-go/internal/services/auth"
	"github.com/edubase/edubase-go/internal/services/insights"
	"github.com/edubase/edubase-go/internal/services/search"
	"github.com/edubase/edubase-go/internal/services/stats"
	"github.com/edubase/edubase-go/internal/services/syncer"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	SearchService   *search.Service
	StatsService    *stats.Service
	InsightsService *insights.Service
	Syncer          *syncer.Orchestrator
	Hub             *events.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	h := handler.New(
		cfg.AuthService,
		cfg.SearchService,
		cfg.StatsService,
		cfg.InsightsService,
		cfg.Syncer,
		cfg.Hub,
		cfg.Logger,
	)

	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Open routes
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	// Routes for any authenticated session
	session := api.PathPrefix("").Subrouter()
	session.Use(authMiddleware)
	session.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	session.HandleFunc("/students/search", h.Search).Methods(http.MethodGet)
	session.HandleFunc("/insights", h.Insights).Methods(http.MethodPost)
	session.HandleFunc("/events", h.Events).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware)
	admin.Use(middleware.AdminOnly)
	admin.HandleFunc("/students", h.ListStudents).Methods(http.MethodGet)
	admin.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
	admin.HandleFunc("/source", h.GetSource).Methods(http.MethodGet)
	admin.HandleFunc("/source", h.Repoint).Methods(http.MethodPut)
	admin.HandleFunc("/sync", h.Sync).Methods(http.MethodPost)
	admin.HandleFunc("/roster", h.UploadRoster).Methods(http.MethodPost)
	admin.HandleFunc("/roster", h.ClearRoster).Methods(http.MethodDelete)
	admin.HandleFunc("/passphrase", h.ChangePassphrase).Methods(http.MethodPost)

	return r
}
