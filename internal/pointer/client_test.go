package pointer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/edubase/edubase-go/internal/dependencies/mocks"
	"github.com/edubase/edubase-go/internal/model"
	"github.com/edubase/edubase-go/internal/testutil"
)

type ClientSuite struct {
	suite.Suite
	clock *mocks.MockClock
	ctx   context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()
}

func (s *ClientSuite) newClient(url string) *Client {
	cfg := DefaultConfig()
	cfg.URL = url
	return New(cfg, s.clock, testutil.NopLogger())
}

// Read tests

func (s *ClientSuite) TestReadReturnsSharedURL() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.SheetPointer{
			ActiveSheetURL: "https://docs.google.com/spreadsheets/d/abc/edit",
			LastUpdated:    "2024-01-01T00:00:00Z",
		})
	}))
	defer srv.Close()

	url, ok := s.newClient(srv.URL).Read(s.ctx)
	s.True(ok)
	s.Equal("https://docs.google.com/spreadsheets/d/abc/edit", url)
}

func (s *ClientSuite) TestReadSendsCacheBypass() {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		_ = json.NewEncoder(w).Encode(model.SheetPointer{ActiveSheetURL: "https://example.com/d/x"})
	}))
	defer srv.Close()

	_, _ = s.newClient(srv.URL).Read(s.ctx)
	s.Require().NotNil(got)
	s.NotEmpty(got.URL.Query().Get("nocache"))
	s.Equal("no-store", got.Header.Get("Cache-Control"))
}

func (s *ClientSuite) TestReadAbsentWhenUnconfigured() {
	_, ok := s.newClient("").Read(s.ctx)
	s.False(ok)
}

func (s *ClientSuite) TestReadAbsentWhenUnreachable() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Closed before the read

	_, ok := s.newClient(srv.URL).Read(s.ctx)
	s.False(ok)
}

func (s *ClientSuite) TestReadAbsentOnErrorStatus() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, ok := s.newClient(srv.URL).Read(s.ctx)
	s.False(ok)
}

func (s *ClientSuite) TestReadAbsentOnMalformedDocument() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, ok := s.newClient(srv.URL).Read(s.ctx)
	s.False(ok)
}

func (s *ClientSuite) TestReadAbsentOnEmptyURLField() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.SheetPointer{})
	}))
	defer srv.Close()

	_, ok := s.newClient(srv.URL).Read(s.ctx)
	s.False(ok)
}

// Write tests

func (s *ClientSuite) TestWriteSendsPointerDocument() {
	var method string
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		body, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	err := s.newClient(srv.URL).Write(s.ctx, "https://docs.google.com/spreadsheets/d/abc/edit")
	s.Require().NoError(err)

	s.Equal(http.MethodPut, method)

	var doc model.SheetPointer
	s.Require().NoError(json.Unmarshal(body, &doc))
	s.Equal("https://docs.google.com/spreadsheets/d/abc/edit", doc.ActiveSheetURL)
	s.Equal("2024-01-01T12:00:00Z", doc.LastUpdated)
}

func (s *ClientSuite) TestWriteNoopWhenUnconfigured() {
	s.NoError(s.newClient("").Write(s.ctx, "https://example.com/d/x"))
}

func (s *ClientSuite) TestWriteErrorOnRejectedStatus() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	s.Error(s.newClient(srv.URL).Write(s.ctx, "https://example.com/d/x"))
}

func (s *ClientSuite) TestWriteErrorWhenUnreachable() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s.Error(s.newClient(srv.URL).Write(s.ctx, "https://example.com/d/x"))
}
