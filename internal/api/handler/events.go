package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/edubase/edubase-go/internal/events"
)

// keepaliveInterval is how often an SSE comment frame is sent so proxies
// do not drop idle connections
const keepaliveInterval = 30 * time.Second

// Events handles GET /events, streaming directory change notifications
// over SSE until the client disconnects.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	client := events.NewClient()
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	// Initial comment confirms the stream is open
	if _, err := w.Write([]byte(": connected\n\n")); err != nil {
		return
	}
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-client.Send():
			if !ok {
				return
			}
			if _, err := w.Write(msg); err != nil {
				h.logger.Debug("events write failed", slog.Any("error", err))
				return
			}
			flusher.Flush()
		case <-keepalive.C:
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
