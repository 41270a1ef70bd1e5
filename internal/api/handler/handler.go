package handler

import (
	"log/slog"

	"github.com/edubase/edubase-go/internal/events"
	"github.com/edubase/edubase-go/internal/services/auth"
	"github.com/edubase/edubase-go/internal/services/insights"
	"github.com/edubase/edubase-go/internal/services/search"
	"github.com/edubase/edubase-go/internal/services/stats"
	"github.com/edubase/edubase-go/internal/services/syncer"
)

// Handler holds the services the API endpoints dispatch to
type Handler struct {
	authService     *auth.Service
	searchService   *search.Service
	statsService    *stats.Service
	insightsService *insights.Service
	syncer          *syncer.Orchestrator
	hub             *events.Hub
	logger          *slog.Logger
}

// New creates a new Handler
func New(
	authService *auth.Service,
	searchService *search.Service,
	statsService *stats.Service,
	insightsService *insights.Service,
	orchestrator *syncer.Orchestrator,
	hub *events.Hub,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		authService:     authService,
		searchService:   searchService,
		statsService:    statsService,
		insightsService: insightsService,
		syncer:          orchestrator,
		hub:             hub,
		logger:          logger.With(slog.String("component", "api-handler")),
	}
}
