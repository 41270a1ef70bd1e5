package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/edubase/edubase-go/internal/testutil"
)

type HubSuite struct {
	suite.Suite
	hub *Hub
}

func TestHubSuite(t *testing.T) {
	suite.Run(t, new(HubSuite))
}

func (s *HubSuite) SetupTest() {
	s.hub = NewHub(testutil.NopLogger())
	go s.hub.Run()
}

func (s *HubSuite) TearDownTest() {
	s.hub.Close()
}

func (s *HubSuite) receive(c *Client) string {
	select {
	case msg, ok := <-c.Send():
		s.Require().True(ok, "send channel closed")
		return string(msg)
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for event")
		return ""
	}
}

func (s *HubSuite) TestBroadcastReachesAllClients() {
	c1 := NewClient()
	c2 := NewClient()
	s.hub.Register(c1)
	s.hub.Register(c2)

	s.hub.BroadcastEvent(EventRosterUpdated, "42")

	for _, c := range []*Client{c1, c2} {
		msg := s.receive(c)
		s.Contains(msg, "event: roster-updated")
		s.Contains(msg, "data: 42")
	}
}

func (s *HubSuite) TestUnregisteredClientChannelCloses() {
	c := NewClient()
	s.hub.Register(c)
	s.hub.Unregister(c)

	select {
	case _, ok := <-c.Send():
		s.False(ok)
	case <-time.After(time.Second):
		s.FailNow("channel not closed after unregister")
	}
}

func (s *HubSuite) TestBroadcasterEventPayloads() {
	c := NewClient()
	s.hub.Register(c)

	b := NewBroadcaster(s.hub, testutil.NopLogger())

	b.RosterUpdated(7)
	msg := s.receive(c)
	s.Contains(msg, "event: roster-updated")
	s.Contains(msg, "data: 7")

	b.PointerUpdated("https://example.com/d/abc")
	msg = s.receive(c)
	s.Contains(msg, "event: pointer-updated")
	s.Contains(msg, "data: https://example.com/d/abc")
}

func (s *HubSuite) TestFormatSSEMessageMultiline() {
	msg := string(formatSSEMessage("test", "line1\nline2"))
	s.Equal("event: test\ndata: line1\ndata: line2\n\n", msg)
}

func (s *HubSuite) TestClientCount() {
	s.Equal(0, s.hub.ClientCount())

	c := NewClient()
	s.hub.Register(c)

	s.Eventually(func() bool {
		return s.hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)
}
