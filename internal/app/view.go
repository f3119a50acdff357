package app

import "gofish/internal/domain"

// FishLeftLabel is the synthetic scoreboard entry reporting the deck count.
const FishLeftLabel = "Fish Left"

// View is the projection of match state for exactly one user. Opponent hands
// stay hidden; only the viewer's player carries cards.
type View struct {
	Message     string         `json:"message"`
	Player      *domain.Player `json:"player"`
	PlayerIndex int            `json:"player_index"`
	Opponents   []OpponentView `json:"opponents"`
	Scores      []ScoreEntry   `json:"scores"`
}

// OpponentView exposes only the public identity of another seat.
type OpponentView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ScoreEntry is one scoreboard line: a player's completed books, or the
// trailing FishLeftLabel entry carrying the deck's remaining count.
type ScoreEntry struct {
	Name  string `json:"name"`
	Books int    `json:"books"`
}

// View projects the match for the given user, or nil when the user holds no
// seat here; the boundary surfaces that as unauthorized.
func (m *Match) View(userID string) *View {
	player := m.Player(userID)
	if player == nil {
		return nil
	}

	opponents := m.Opponents(player)
	opponentViews := make([]OpponentView, len(opponents))
	for i, o := range opponents {
		opponentViews[i] = OpponentView{ID: o.ID, Name: o.Name, Icon: o.Icon}
	}

	scores := make([]ScoreEntry, 0, len(m.Game.Players)+1)
	for _, p := range m.Game.Players {
		scores = append(scores, ScoreEntry{Name: p.Name, Books: p.BookCount()})
	}
	scores = append(scores, ScoreEntry{Name: FishLeftLabel, Books: m.Game.Deck.Count()})

	return &View{
		Message:     m.Message,
		Player:      player,
		PlayerIndex: m.Game.Seat(player),
		Opponents:   opponentViews,
		Scores:      scores,
	}
}
