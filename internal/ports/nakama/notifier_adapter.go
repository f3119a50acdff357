package nakama

import (
	"context"
	"fmt"

	"gofish/internal/ports"
)

const (
	// notificationCodeMatchReady tells clients to navigate into their match.
	notificationCodeMatchReady = 1

	matchReadySubject = "send_to_game_event"
)

// notificationSender is the slice of runtime.NakamaModule the notifier needs.
type notificationSender interface {
	NotificationSend(ctx context.Context, userID, subject string, content map[string]interface{}, code int, sender string, persistent bool) error
}

// NakamaNotifier implements ports.Notifier using Nakama's in-app notifications.
type NakamaNotifier struct {
	nk notificationSender
}

// NewNakamaNotifier creates a new notifier adapter.
func NewNakamaNotifier(nk notificationSender) *NakamaNotifier {
	return &NakamaNotifier{nk: nk}
}

// MatchCreated tells one human participant which match they were seated into.
func (a *NakamaNotifier) MatchCreated(ctx context.Context, userID, matchID string) error {
	content := map[string]interface{}{
		"match_id": matchID,
	}
	if err := a.nk.NotificationSend(ctx, userID, matchReadySubject, content, notificationCodeMatchReady, "", false); err != nil {
		return fmt.Errorf("failed to notify user %s of match %s: %w", userID, matchID, err)
	}
	return nil
}

var _ ports.Notifier = (*NakamaNotifier)(nil)
