package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edubase/edubase-go/internal/model"
	"github.com/edubase/edubase-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Roster operations

func (s *Storage) SaveRoster(ctx context.Context, students model.Roster) error {
	data, err := json.Marshal(students)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, rosterKey(), data, s.cfg.RosterTTL).Err()
}

func (s *Storage) GetRoster(ctx context.Context) (model.Roster, error) {
	data, err := s.client.Get(ctx, rosterKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRosterNotCached
		}
		return nil, err
	}

	var students model.Roster
	if err := json.Unmarshal(data, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (s *Storage) ClearRoster(ctx context.Context) error {
	return s.client.Del(ctx, rosterKey()).Err()
}

// Sheet URL operations

func (s *Storage) SaveSheetURL(ctx context.Context, url string) error {
	return s.client.Set(ctx, sheetURLKey(), url, 0).Err()
}

func (s *Storage) GetSheetURL(ctx context.Context) (string, error) {
	url, err := s.client.Get(ctx, sheetURLKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrSheetURLNotSet
		}
		return "", err
	}
	if url == "" {
		return "", model.ErrSheetURLNotSet
	}
	return url, nil
}

// Passphrase operations

func (s *Storage) SavePassphraseHash(ctx context.Context, hash []byte) error {
	return s.client.Set(ctx, passphraseKey(), hash, 0).Err()
}

func (s *Storage) GetPassphraseHash(ctx context.Context) ([]byte, error) {
	hash, err := s.client.Get(ctx, passphraseKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPassphraseNotSet
		}
		return nil, err
	}
	return hash, nil
}
