package events

import (
	"strings"
	"time"
)

// Client is one connected SSE listener
type Client struct {
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a new client with a buffered send channel
func NewClient() *Client {
	return &Client{
		send:        make(chan []byte, 64),
		connectedAt: time.Now(),
	}
}

// Send returns the channel messages are delivered on. The channel is
// closed when the client is unregistered.
func (c *Client) Send() <-chan []byte {
	return c.send
}

// formatSSEMessage formats an SSE frame with event name and data
func formatSSEMessage(eventName, data string) []byte {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(eventName)
	b.WriteString("\n")
	for _, line := range strings.Split(data, "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return []byte(b.String())
}
