package events

import (
	"log/slog"
	"strconv"
)

// Event names pushed to connected clients
const (
	EventRosterUpdated  = "roster-updated"
	EventPointerUpdated = "pointer-updated"
)

// Broadcaster publishes directory change signals to all connected clients
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "events-broadcaster")),
	}
}

// RosterUpdated signals that the active roster was replaced. Clients
// re-query rather than receiving the records inline.
func (b *Broadcaster) RosterUpdated(records int) {
	b.hub.BroadcastEvent(EventRosterUpdated, strconv.Itoa(records))
}

// PointerUpdated signals that the master sheet URL changed, so listening
// clients can re-sync without waiting for the polling interval.
func (b *Broadcaster) PointerUpdated(sheetURL string) {
	b.hub.BroadcastEvent(EventPointerUpdated, sheetURL)
}
