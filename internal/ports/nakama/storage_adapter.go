package nakama

import (
	"context"
	"fmt"

	"gofish/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

const matchCollection = "matches"

// matchStorage is the slice of runtime.NakamaModule the store adapter needs.
type matchStorage interface {
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
}

// NakamaMatchStore implements ports.MatchStore on Nakama's storage engine.
// Snapshots live in a server-owned collection keyed by match id; clients can
// neither read nor write them directly.
type NakamaMatchStore struct {
	nk matchStorage
}

// NewNakamaMatchStore creates a new match store adapter.
func NewNakamaMatchStore(nk matchStorage) *NakamaMatchStore {
	return &NakamaMatchStore{nk: nk}
}

// Save writes the snapshot for the match id.
func (a *NakamaMatchStore) Save(ctx context.Context, matchID string, snapshot []byte) error {
	writes := []*runtime.StorageWrite{
		{
			Collection:      matchCollection,
			Key:             matchID,
			Value:           string(snapshot),
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}
	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to write match %s: %w", matchID, err)
	}
	return nil
}

// Load returns the snapshot for the match id, or ports.ErrMatchNotFound.
func (a *NakamaMatchStore) Load(ctx context.Context, matchID string) ([]byte, error) {
	reads := []*runtime.StorageRead{
		{
			Collection: matchCollection,
			Key:        matchID,
		},
	}
	objects, err := a.nk.StorageRead(ctx, reads)
	if err != nil {
		return nil, fmt.Errorf("failed to read match %s: %w", matchID, err)
	}
	if len(objects) == 0 {
		return nil, ports.ErrMatchNotFound
	}
	return []byte(objects[0].Value), nil
}

var _ ports.MatchStore = (*NakamaMatchStore)(nil)
