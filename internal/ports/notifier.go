package ports

import "context"

// Notifier delivers the one-shot "your match is ready" signal to a human
// participant. Transport is the adapter's concern.
type Notifier interface {
	MatchCreated(ctx context.Context, userID, matchID string) error
}
