package ports

import (
	"context"
	"errors"
)

// ErrMatchNotFound is returned by Load when no snapshot exists for the id.
var ErrMatchNotFound = errors.New("match not found")

// MatchStore persists match snapshots keyed by an opaque match id. Snapshots
// are produced and consumed by the app codec; the store treats them as bytes.
type MatchStore interface {
	// Save writes the snapshot for the match id, replacing any previous one.
	Save(ctx context.Context, matchID string, snapshot []byte) error

	// Load returns the snapshot for the match id, or ErrMatchNotFound.
	Load(ctx context.Context, matchID string) ([]byte, error)
}
