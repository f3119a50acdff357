package ports

import "context"

// Stats records per-user scoring outcomes.
type Stats interface {
	// AddWin credits the user with one winning point for the given match.
	AddWin(ctx context.Context, userID, matchID string) error
}
