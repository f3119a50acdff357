package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand"
	"time"

	"gofish/internal/bot"
	"gofish/internal/domain"
	"gofish/internal/ports"
)

// FirstPrompt is appended to the initial turn-holder's name to form a new
// match's opening message.
const FirstPrompt = ", it's your turn!"

var (
	ErrTooFewPlayers = errors.New("not enough participants for a match")
	ErrUnknownPlayer = errors.New("player not part of this match")
)

// Service contains the Go Fish match use-cases operating on domain state.
type Service struct {
	rng   *mrand.Rand
	stats ports.Stats
}

// NewService constructs a Service with the provided rng or a time-seeded
// default. stats may be nil when win scoring is not wired.
func NewService(rng *mrand.Rand, stats ports.Stats) *Service {
	if rng == nil {
		rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, stats: stats}
}

// NewMatch seats the participants in order, shuffles a standard deck, deals
// handSize cards to each seat round-robin and hands the first turn to the
// first human seat (seat 0 when every seat is AI-controlled).
func (s *Service) NewMatch(participants []Participant, handSize int) (*Match, error) {
	if len(participants) < 2 {
		return nil, ErrTooFewPlayers
	}

	players := make([]*domain.Player, len(participants))
	for i, p := range participants {
		players[i] = &domain.Player{
			ID:   fmt.Sprintf("player-%d", i),
			Name: p.Name,
			Icon: p.Icon,
		}
	}

	deck := domain.NewDeck()
	deck.Shuffle(s.rng)
	for i := 0; i < handSize; i++ {
		for _, player := range players {
			if card, ok := deck.Draw(); ok {
				player.AddCard(card)
			}
		}
	}

	game := domain.NewGame(players, deck, firstHumanSeat(participants))

	m := &Match{
		ID:       newMatchID(),
		Seats:    append([]Participant(nil), participants...),
		Game:     game,
		HandSize: handSize,
		Message:  game.CurrentPlayer().Name + FirstPrompt,
		bots:     newAgents(participants, s.rng),
	}
	return m, nil
}

// RunPlay applies one human play, then keeps synthesizing plays while the
// turn holder is AI-controlled and the game is still running. The loop is
// iterative so rotation length never grows the stack; it terminates because
// every pass either moves cards out of a hand, completes a book, or shrinks
// the deck. A finished game ends the match in place.
func (s *Service) RunPlay(ctx context.Context, m *Match, requester, opponent *domain.Player, rank string) {
	if m.Over || m.Game == nil {
		return
	}

	s.applyPlay(m, requester, opponent, rank)

	for !m.Game.Over {
		seat := m.Seats[m.Game.NextTurn]
		if !seat.AI {
			break
		}
		agent := m.bots[seat.UserID]
		if agent == nil {
			break
		}
		current := m.Game.CurrentPlayer()
		ask, err := agent.Ask(m.Game, current, m.Opponents(current))
		if err != nil {
			break
		}
		s.applyPlay(m, current, ask.Opponent, ask.Rank)
	}

	if m.Game.Over {
		s.EndMatch(ctx, m)
	}
}

// EndMatch flags the match over, resolves the winner and credits one winning
// point to a human winner. Ending an already-ended match is a no-op.
func (s *Service) EndMatch(ctx context.Context, m *Match) {
	if m.Over {
		return
	}
	m.Over = true

	winner := m.Game.Winner()
	if winner == nil {
		return
	}
	seat, ok := m.User(winner)
	if !ok {
		return
	}
	m.WinnerUserID = seat.UserID
	if s.stats != nil && !seat.AI {
		// Scoring is best-effort; a failed stat write does not unwind the match.
		_ = s.stats.AddWin(ctx, seat.UserID, m.ID)
	}
}

func (s *Service) applyPlay(m *Match, requester, opponent *domain.Player, rank string) {
	outcome, ok := m.Game.ResolvePlay(requester, opponent, rank)
	if !ok {
		return
	}
	m.Message = composeMessage(m.Game, requester, opponent, rank, outcome)
}

func composeMessage(game *domain.Game, requester, opponent *domain.Player, rank string, outcome domain.Outcome) string {
	head := fmt.Sprintf("%s asked %s for %ss", requester.Name, opponent.Name, rank)

	switch outcome {
	case domain.OutcomeDirectHit:
		head += " and got cards!"
	case domain.OutcomeFishHit:
		head += " and went fish and got one!"
	default:
		head += " and went fish!"
	}

	if game.Over {
		winnerName := "none"
		if winner := game.Winner(); winner != nil {
			winnerName = winner.Name
		}
		return head + " Game over! Winner: " + winnerName
	}
	return head + fmt.Sprintf(" It's %s's turn!", game.CurrentPlayer().Name)
}

// firstHumanSeat returns the first human-controlled seat index, or 0 when
// every seat is AI-controlled.
func firstHumanSeat(participants []Participant) int {
	for i, p := range participants {
		if !p.AI {
			return i
		}
	}
	return 0
}

func newAgents(participants []Participant, rng *mrand.Rand) map[string]*bot.Agent {
	agents := make(map[string]*bot.Agent)
	for _, p := range participants {
		if p.AI {
			agents[p.UserID] = bot.NewAgent(p.UserID, p.Name, bot.NewRandomBrain(rng))
		}
	}
	return agents
}

// newMatchID generates a random 12-character hex match identifier.
func newMatchID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("match-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
