package memory

import (
	"context"
	"sync"

	"github.com/edubase/edubase-go/internal/model"
	"github.com/edubase/edubase-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	roster    model.Roster
	hasRoster bool
	sheetURL  string
	hash      []byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Roster operations

func (s *Storage) SaveRoster(ctx context.Context, students model.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = append(model.Roster(nil), students...)
	s.hasRoster = true
	return nil
}

func (s *Storage) GetRoster(ctx context.Context) (model.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasRoster {
		return nil, model.ErrRosterNotCached
	}
	return append(model.Roster(nil), s.roster...), nil
}

func (s *Storage) ClearRoster(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = nil
	s.hasRoster = false
	return nil
}

// Sheet URL operations

func (s *Storage) SaveSheetURL(ctx context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheetURL = url
	return nil
}

func (s *Storage) GetSheetURL(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sheetURL == "" {
		return "", model.ErrSheetURLNotSet
	}
	return s.sheetURL, nil
}

// Passphrase operations

func (s *Storage) SavePassphraseHash(ctx context.Context, hash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hash = append([]byte(nil), hash...)
	return nil
}

func (s *Storage) GetPassphraseHash(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.hash == nil {
		return nil, model.ErrPassphraseNotSet
	}
	return append([]byte(nil), s.hash...), nil
}
