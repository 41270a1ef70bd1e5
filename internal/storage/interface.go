package storage

import (
	"context"

	"github.com/edubase/edubase-go/internal/model"
)

// Storage is the durable local cache: the last successfully loaded roster,
// the locally saved sheet URL, and the admin passphrase hash. It is the
// offline fallback when the remote sheet or the shared pointer store is
// unreachable.
type Storage interface {
	// Roster operations. SaveRoster replaces the cached roster wholesale.
	SaveRoster(ctx context.Context, students model.Roster) error
	GetRoster(ctx context.Context) (model.Roster, error)
	ClearRoster(ctx context.Context) error

	// Sheet URL operations (local pointer)
	SaveSheetURL(ctx context.Context, url string) error
	GetSheetURL(ctx context.Context) (string, error)

	// Passphrase operations
	SavePassphraseHash(ctx context.Context, hash []byte) error
	GetPassphraseHash(ctx context.Context) ([]byte, error)
}
