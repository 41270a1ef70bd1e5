package syncer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/edubase/edubase-go/internal/dependencies/mocks"
	"github.com/edubase/edubase-go/internal/events"
	"github.com/edubase/edubase-go/internal/model"
	"github.com/edubase/edubase-go/internal/pointer"
	"github.com/edubase/edubase-go/internal/sheets"
	"github.com/edubase/edubase-go/internal/storage/memory"
	"github.com/edubase/edubase-go/internal/testutil"
)

const shareURL = "https://docs.google.com/spreadsheets/d/sheet-one/edit"
const otherShareURL = "https://docs.google.com/spreadsheets/d/sheet-two/edit"

type OrchestratorSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	ctx     context.Context

	sheetCSV    string
	sheetStatus int
	sheetSrv    *httptest.Server

	pointerDoc    *model.SheetPointer
	pointerStatus int
	pointerWrites []model.SheetPointer
	pointerSrv    *httptest.Server
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorSuite))
}

func (s *OrchestratorSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	s.sheetCSV = "SID,SNAME,CNAME\nX1,Alice,Dr. Rao\nX2,Bob,Dr. Rao\n"
	s.sheetStatus = http.StatusOK
	s.sheetSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.sheetStatus != http.StatusOK {
			w.WriteHeader(s.sheetStatus)
			return
		}
		_, _ = w.Write([]byte(s.sheetCSV))
	}))

	s.pointerDoc = nil
	s.pointerStatus = http.StatusOK
	s.pointerWrites = nil
	s.pointerSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.pointerStatus != http.StatusOK {
			w.WriteHeader(s.pointerStatus)
			return
		}
		if r.Method == http.MethodPut {
			var doc model.SheetPointer
			_ = json.NewDecoder(r.Body).Decode(&doc)
			s.pointerWrites = append(s.pointerWrites, doc)
			s.pointerDoc = &doc
			return
		}
		if s.pointerDoc == nil {
			_ = json.NewEncoder(w).Encode(model.SheetPointer{})
			return
		}
		_ = json.NewEncoder(w).Encode(s.pointerDoc)
	}))
}

func (s *OrchestratorSuite) TearDownTest() {
	s.sheetSrv.Close()
	s.pointerSrv.Close()
}

func (s *OrchestratorSuite) newOrchestrator(pointerURL string) *Orchestrator {
	logger := testutil.NopLogger()

	sheetCfg := sheets.DefaultConfig()
	sheetCfg.ExportBaseURL = s.sheetSrv.URL
	adapter := sheets.New(sheetCfg, s.clock, logger)

	pointerCfg := pointer.DefaultConfig()
	pointerCfg.URL = pointerURL
	pointerClient := pointer.New(pointerCfg, s.clock, logger)

	hub := events.NewHub(logger)
	broadcaster := events.NewBroadcaster(hub, logger)

	return New(s.storage, adapter, pointerClient, broadcaster, s.clock, DefaultConfig(), logger)
}

// Load tests

func (s *OrchestratorSuite) TestLoadNoSourceFreshInstall() {
	o := s.newOrchestrator("")

	s.Require().NoError(o.Load(s.ctx))
	s.Equal(StateReady, o.State())
	s.Empty(o.Roster())
}

func (s *OrchestratorSuite) TestLoadFetchesFromLocalURL() {
	s.Require().NoError(s.storage.SaveSheetURL(s.ctx, shareURL))
	o := s.newOrchestrator("")

	s.Require().NoError(o.Load(s.ctx))
	s.Equal(StateReady, o.State())
	s.Require().Len(o.Roster(), 2)
	s.Equal("Alice", o.Roster()[0].Name)
	s.Equal(shareURL, o.SheetURL())
}

func (s *OrchestratorSuite) TestLoadWritesThroughToCache() {
	s.Require().NoError(s.storage.SaveSheetURL(s.ctx, shareURL))
	o := s.newOrchestrator("")

	s.Require().NoError(o.Load(s.ctx))

	cached, err := s.storage.GetRoster(s.ctx)
	s.Require().NoError(err)
	s.Len(cached, 2)
}

func (s *OrchestratorSuite) TestLoadPrefersSharedPointer() {
	// The local pointer is stale; the shared store has the current one
	s.Require().NoError(s.storage.SaveSheetURL(s.ctx, otherShareURL))
	s.pointerDoc = &model.SheetPointer{ActiveSheetURL: shareURL}
	o := s.newOrchestrator(s.pointerSrv.URL)

	s.Require().NoError(o.Load(s.ctx))
	s.Equal(shareURL, o.SheetURL())

	// The local pointer converges on the shared value
	localURL, err := s.storage.GetSheetURL(s.ctx)
	s.Require().NoError(err)
	s.Equal(shareURL, localURL)
}

func (s *OrchestratorSuite) TestLoadPointerStoreDownFallsBackToLocalURL() {
	s.Require().NoError(s.storage.SaveSheetURL(s.ctx, shareURL))
	s.pointerStatus = http.StatusInternalServerError
	o := s.newOrchestrator(s.pointerSrv.URL)

	s.Require().NoError(o.Load(s.ctx))
	s.Equal(StateReady, o.State())
	s.Len(o.Roster(), 2)
}

func (s *OrchestratorSuite) TestLoadFetchFailureFallsBackToCache() {
	s.Require().NoError(s.storage.SaveSheetURL(s.ctx, shareURL))
	cached := model.Roster{{ID: "st-0-1", Name: "Cached"}}
	s.Require().NoError(s.storage.SaveRoster(s.ctx, cached))
	s.sheetStatus = http.StatusForbidden
	o := s.newOrchestrator("")

	s.Require().NoError(o.Load(s.ctx))
	s.Equal(StateDegraded, o.State())
	s.Require().Len(o.Roster(), 1)
	s.Equal("Cached", o.Roster()[0].Name)
}

func (s *OrchestratorSuite) TestLoadFetchFailureNoCacheIsError() {
	s.Require().NoError(s.storage.SaveSheetURL(s.ctx, shareURL))
	s.sheetStatus = http.StatusForbidden
	o := s.newOrchestrator("")

	err := o.Load(s.ctx)
	s.ErrorIs(err, model.ErrSheetUnavailable)
	s.Equal(StateError, o.State())
	s.Empty(o.Roster())
}

func (s *OrchestratorSuite) TestLoadNoSourceServesCache() {
	cached := model.Roster{{ID: "st-0-1", Name: "Cached"}}
	s.Require().NoError(s.storage.SaveRoster(s.ctx, cached))
	o := s.newOrchestrator("")

	s.Require().NoError(o.Load(s.ctx))
	s.Equal(StateReady, o.State())
	s.Len(o.Roster(), 1)
}

// Sync tests

func (s *OrchestratorSuite) TestSyncWithoutSource() {
	o := s.newOrchestrator("")

	_, err := o.Sync(s.ctx)
	s.ErrorIs(err, model.ErrNoDataSource)
}

func (s *OrchestratorSuite) TestSyncAdoptsFreshRoster() {
	s.Require().NoError(s.storage.SaveSheetURL(s.ctx, shareURL))
	o := s.newOrchestrator("")

	records, err := o.Sync(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, records)
	s.Equal(s.clock.Now(), o.LastSync())
}

func (s *OrchestratorSuite) TestSyncSurfacesFetchError() {
	s.Require().NoError(s.storage.SaveSheetURL(s.ctx, shareURL))
	s.sheetStatus = http.StatusForbidden
	o := s.newOrchestrator("")

	_, err := o.Sync(s.ctx)
	s.ErrorIs(err, model.ErrSheetUnavailable)
}

// Repoint tests

func (s *OrchestratorSuite) TestRepointRejectsInvalidURL() {
	o := s.newOrchestrator("")

	_, err := o.Repoint(s.ctx, "https://example.com/nope")
	s.ErrorIs(err, model.ErrInvalidSheetURL)

	_, err = s.storage.GetSheetURL(s.ctx)
	s.ErrorIs(err, model.ErrSheetURLNotSet)
}

func (s *OrchestratorSuite) TestRepointAdoptsNewSheet() {
	o := s.newOrchestrator(s.pointerSrv.URL)

	result, err := o.Repoint(s.ctx, shareURL)
	s.Require().NoError(err)
	s.Equal(2, result.Records)
	s.True(result.SharedStoreSynced)
	s.Equal(StateReady, o.State())
	s.Equal(shareURL, o.SheetURL())
}

func (s *OrchestratorSuite) TestRepointPublishesSharedPointer() {
	o := s.newOrchestrator(s.pointerSrv.URL)

	_, err := o.Repoint(s.ctx, shareURL)
	s.Require().NoError(err)

	s.Require().Len(s.pointerWrites, 1)
	s.Equal(shareURL, s.pointerWrites[0].ActiveSheetURL)
	s.NotEmpty(s.pointerWrites[0].LastUpdated)
}

func (s *OrchestratorSuite) TestRepointLocalFirstWhenStoreDown() {
	s.pointerStatus = http.StatusInternalServerError
	o := s.newOrchestrator(s.pointerSrv.URL)

	result, err := o.Repoint(s.ctx, shareURL)
	s.Require().NoError(err)
	s.False(result.SharedStoreSynced)
	s.Equal(2, result.Records)

	// The local pointer was still saved
	localURL, err := s.storage.GetSheetURL(s.ctx)
	s.Require().NoError(err)
	s.Equal(shareURL, localURL)
}

// Roster replacement tests

func (s *OrchestratorSuite) TestReplaceRoster() {
	o := s.newOrchestrator("")
	uploaded := model.Roster{{ID: "st-0-1", Name: "Uploaded"}}

	s.Require().NoError(o.ReplaceRoster(s.ctx, uploaded))
	s.Equal(StateReady, o.State())
	s.Len(o.Roster(), 1)

	cached, err := s.storage.GetRoster(s.ctx)
	s.Require().NoError(err)
	s.Equal(uploaded, cached)
}

func (s *OrchestratorSuite) TestClearEmptiesRosterAndCache() {
	o := s.newOrchestrator("")
	s.Require().NoError(o.ReplaceRoster(s.ctx, model.Roster{{ID: "st-0-1", Name: "Alice"}}))

	s.Require().NoError(o.Clear(s.ctx))
	s.Empty(o.Roster())

	_, err := s.storage.GetRoster(s.ctx)
	s.ErrorIs(err, model.ErrRosterNotCached)
}
