package nakama

import (
	"context"
	"fmt"

	"gofish/internal/ports"
)

// walletUpdater is the slice of runtime.NakamaModule the stats adapter needs.
type walletUpdater interface {
	WalletUpdate(ctx context.Context, userID string, changeset map[string]int64, metadata map[string]interface{}, updateLedger bool) (map[string]int64, map[string]int64, error)
}

// NakamaStats implements ports.Stats on Nakama's wallet: each match win
// credits one point to the winner's "points" balance with the match recorded
// in the ledger metadata.
type NakamaStats struct {
	nk walletUpdater
}

// NewNakamaStats creates a new stats adapter.
func NewNakamaStats(nk walletUpdater) *NakamaStats {
	return &NakamaStats{nk: nk}
}

// AddWin credits the user with one winning point.
func (a *NakamaStats) AddWin(ctx context.Context, userID, matchID string) error {
	changeset := map[string]int64{"points": 1}
	metadata := map[string]interface{}{
		"match_id": matchID,
		"reason":   "match_won",
	}
	if _, _, err := a.nk.WalletUpdate(ctx, userID, changeset, metadata, true); err != nil {
		return fmt.Errorf("failed to credit win for user %s: %w", userID, err)
	}
	return nil
}

var _ ports.Stats = (*NakamaStats)(nil)
