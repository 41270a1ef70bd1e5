package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/edubase/edubase-go/internal/dependencies/clock"
	"github.com/edubase/edubase-go/internal/model"
	"github.com/edubase/edubase-go/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrWeakPassphrase     = errors.New("passphrase must be at least 4 characters")
	ErrInvalidRole        = errors.New("invalid role")
)

// DefaultPassphrase grants admin access until the passphrase is changed
const DefaultPassphrase = "admin123"

const minPassphraseLen = 4

// Role is the access level granted to a session
type Role string

// Roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session represents an authenticated session
type Session struct {
	Token     string
	Role      Role
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsAdmin reports whether the session carries the admin role
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// Service gates the user and admin roles. The user role needs no
// credential; the admin role requires the passphrase, which is stored
// hashed in the local cache.
type Service struct {
	storage storage.Storage
	clock   clock.Clock

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// New creates a new auth service
func New(storage storage.Storage, clock clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// Login grants a session for the requested role. A wrong admin passphrase
// is an invalid-credentials error, never a fatal one.
func (s *Service) Login(ctx context.Context, role Role, passphrase string) (*Session, error) {
	switch role {
	case RoleUser:
		// Public search needs no credential
	case RoleAdmin:
		if err := s.checkPassphrase(ctx, passphrase); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidRole
	}

	now := s.clock.Now()
	session := &Session{
		Token:     generateToken(),
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session, nil
}

// ValidateSession returns the session for a token, or ErrInvalidSession
// when the token is unknown or expired.
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}
	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}
	return session, nil
}

// Logout invalidates a session token
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// ChangePassphrase replaces the admin passphrase
func (s *Service) ChangePassphrase(ctx context.Context, newPassphrase string) error {
	if len(newPassphrase) < minPassphraseLen {
		return ErrWeakPassphrase
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassphrase), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.storage.SavePassphraseHash(ctx, hash)
}

func (s *Service) checkPassphrase(ctx context.Context, passphrase string) error {
	hash, err := s.storage.GetPassphraseHash(ctx)
	if errors.Is(err, model.ErrPassphraseNotSet) {
		// No passphrase has been set yet; the default applies
		if passphrase == DefaultPassphrase {
			return nil
		}
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(passphrase)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
