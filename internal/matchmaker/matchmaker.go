package matchmaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"gofish/internal/app"
	"gofish/internal/bot"
	"gofish/internal/ports"
)

// ErrAlreadyMatched is reported when a delayed fill fires after a concurrent
// winner already drained the pool. Losing the race is a normal outcome.
var ErrAlreadyMatched = errors.New("already matched")

// MatchMaker holds one pool of waiting humans per target party size and turns
// a pending join into a created match once the wait elapses, topping up empty
// seats with AI personas. Each instance owns its own lock; construct and
// inject it rather than sharing a hidden global.
type MatchMaker struct {
	mu      sync.Mutex
	pools   map[int][]app.Participant
	waiting map[string]int    // userID -> party size the user waits for
	matched map[string]string // userID -> matchID once seated

	svc      *app.Service
	store    ports.MatchStore
	notifier ports.Notifier
	handSize int
}

// New constructs a MatchMaker. store and notifier may be nil in tests that
// only exercise pool mechanics.
func New(svc *app.Service, store ports.MatchStore, notifier ports.Notifier, handSize int) *MatchMaker {
	return &MatchMaker{
		pools:    make(map[int][]app.Participant),
		waiting:  make(map[string]int),
		matched:  make(map[string]string),
		svc:      svc,
		store:    store,
		notifier: notifier,
		handSize: handSize,
	}
}

// Join adds the participant to the pool for the given party size. A user who
// is already waiting or already matched is left untouched; joining is
// idempotent per user. Reports whether the user was newly added.
func (mm *MatchMaker) Join(p app.Participant, numPlayers int) bool {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	if _, ok := mm.waiting[p.UserID]; ok {
		return false
	}
	if _, ok := mm.matched[p.UserID]; ok {
		return false
	}

	mm.pools[numPlayers] = append(mm.pools[numPlayers], p)
	mm.waiting[p.UserID] = numPlayers
	return true
}

// Waiting reports whether the user currently sits in a pool.
func (mm *MatchMaker) Waiting(userID string) bool {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	_, ok := mm.waiting[userID]
	return ok
}

// MatchID returns the match the user was seated into, if any.
func (mm *MatchMaker) MatchID(userID string) (string, bool) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	id, ok := mm.matched[userID]
	return id, ok
}

// StartMatchAfterDelay waits, then checks the user's pool under the lock.
// When a concurrent fill already drained it the call reports
// ErrAlreadyMatched and changes nothing; otherwise it seats at most
// numPlayers humans from the pool in join order, fills the remaining seats
// with AI personas, creates and persists the match, and notifies every
// seated human. Surplus humans stay in the pool for their own pending fill.
// Exactly one concurrent caller per pool performs each drain.
func (mm *MatchMaker) StartMatchAfterDelay(ctx context.Context, userID string, wait time.Duration) (*app.Match, error) {
	time.Sleep(wait)

	mm.mu.Lock()
	defer mm.mu.Unlock()

	numPlayers, ok := mm.waiting[userID]
	if !ok {
		return nil, ErrAlreadyMatched
	}

	// Seat the caller plus the earliest others, never more than numPlayers.
	// The caller must always be seated: their pending fill fires only once,
	// while everyone left in the pool still has a fill of their own coming.
	pool := mm.pools[numPlayers]
	participants := make([]app.Participant, 0, numPlayers)
	var remainder []app.Participant
	slots := numPlayers - 1
	for _, p := range pool {
		switch {
		case p.UserID == userID:
			participants = append(participants, p)
		case slots > 0:
			participants = append(participants, p)
			slots--
		default:
			remainder = append(remainder, p)
		}
	}
	for i := len(participants); i < numPlayers; i++ {
		identity := bot.GetIdentity(i)
		participants = append(participants, app.Participant{
			UserID: identity.UserID,
			Name:   identity.DisplayName,
			Icon:   identity.Icon,
			AI:     true,
		})
	}

	m, err := mm.svc.NewMatch(participants, mm.handSize)
	if err != nil {
		return nil, err
	}

	if mm.store != nil {
		snapshot, err := mm.svc.EncodeMatch(m)
		if err != nil {
			return nil, err
		}
		if err := mm.store.Save(ctx, m.ID, snapshot); err != nil {
			return nil, err
		}
	}

	if len(remainder) > 0 {
		mm.pools[numPlayers] = remainder
	} else {
		delete(mm.pools, numPlayers)
	}
	for _, p := range participants {
		if p.AI {
			continue
		}
		delete(mm.waiting, p.UserID)
		mm.matched[p.UserID] = m.ID
		if mm.notifier != nil {
			// Delivery is best-effort; a dead client should not hold up the rest.
			_ = mm.notifier.MatchCreated(ctx, p.UserID, m.ID)
		}
	}

	return m, nil
}
