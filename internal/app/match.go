package app

import (
	"gofish/internal/bot"
	"gofish/internal/domain"
)

// Participant is a match-scoped user identity: either a human account or an
// AI persona, tagged rather than subtyped.
type Participant struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	AI     bool   `json:"ai"`
}

// Match pairs a Game with the user identities seated around it. Seat i of
// Seats plays as Game.Players[i]; the pairing is fixed at creation. Message
// is the human-readable summary of the most recent play.
type Match struct {
	ID           string        `json:"id"`
	Seats        []Participant `json:"seats"`
	Game         *domain.Game  `json:"game"`
	HandSize     int           `json:"hand_size"`
	Message      string        `json:"message"`
	Over         bool          `json:"over"`
	WinnerUserID string        `json:"winner_user_id,omitempty"`

	bots map[string]*bot.Agent // AI agents by user id, rebuilt on decode
}

// Player returns the seat player for the given user id, or nil when the user
// is not part of this match.
func (m *Match) Player(userID string) *domain.Player {
	for i, seat := range m.Seats {
		if seat.UserID == userID {
			return m.Game.Players[i]
		}
	}
	return nil
}

// User returns the participant seated as the given player. The second return
// is false when the player is not part of this match.
func (m *Match) User(player *domain.Player) (Participant, bool) {
	seat := m.Game.Seat(player)
	if seat < 0 {
		return Participant{}, false
	}
	return m.Seats[seat], true
}

// Opponents returns every other seat in rotation order starting immediately
// after the given player: for seats [A,B,C,D], Opponents(B) is [C,D,A].
func (m *Match) Opponents(player *domain.Player) []*domain.Player {
	seat := m.Game.Seat(player)
	if seat < 0 {
		return nil
	}
	n := len(m.Game.Players)
	opponents := make([]*domain.Player, 0, n-1)
	for i := 1; i < n; i++ {
		opponents = append(opponents, m.Game.Players[(seat+i)%n])
	}
	return opponents
}

// Humans returns the human participants in seating order.
func (m *Match) Humans() []Participant {
	var humans []Participant
	for _, seat := range m.Seats {
		if !seat.AI {
			humans = append(humans, seat)
		}
	}
	return humans
}
