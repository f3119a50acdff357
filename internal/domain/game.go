package domain

// Outcome classifies how a single card request resolved.
type Outcome string

const (
	// OutcomeDirectHit means the opponent held matching cards and handed them over.
	OutcomeDirectHit Outcome = "direct_hit"
	// OutcomeFishHit means the requester drew the very rank they asked for.
	OutcomeFishHit Outcome = "fish_hit"
	// OutcomeFishMiss means the requester drew a card of some other rank.
	OutcomeFishMiss Outcome = "fish_miss"
	// OutcomeFishEmpty means the deck had no card left to draw.
	OutcomeFishEmpty Outcome = "fish_empty"
)

// Request is one entry in the append-only audit log of card requests.
type Request struct {
	Requester string  `json:"requester"`
	Opponent  string  `json:"opponent"`
	Rank      string  `json:"rank"`
	Outcome   Outcome `json:"outcome"`
}

// Game is the Go Fish turn state machine: seated players, the shared deck,
// the turn holder and the request history. Once Over flips true it never
// reverts and NextTurn is meaningless.
type Game struct {
	Players  []*Player `json:"players"`
	Deck     *Deck     `json:"deck"`
	NextTurn int       `json:"next_turn"`
	Requests []Request `json:"requests"`
	Over     bool      `json:"over"`
}

// NewGame seats the players in order around the deck with the given seat
// holding the first turn.
func NewGame(players []*Player, deck *Deck, firstTurn int) *Game {
	if firstTurn < 0 || firstTurn >= len(players) {
		firstTurn = 0
	}
	return &Game{
		Players:  players,
		Deck:     deck,
		NextTurn: firstTurn,
	}
}

// CurrentPlayer returns the player whose turn it is, or nil once the game is over.
func (g *Game) CurrentPlayer() *Player {
	if g.Over || g.NextTurn < 0 || g.NextTurn >= len(g.Players) {
		return nil
	}
	return g.Players[g.NextTurn]
}

// Seat returns the seating index of the player, or -1 if the player is not
// part of this game.
func (g *Game) Seat(player *Player) int {
	for i, p := range g.Players {
		if p == player {
			return i
		}
	}
	return -1
}

// ResolvePlay applies one card request from requester to opponent. A request
// from anyone but the turn holder changes nothing and reports false; stale or
// replayed actions are dropped, not failed. On a direct hit or a lucky draw
// the turn stays with the requester, otherwise it advances one seat.
func (g *Game) ResolvePlay(requester, opponent *Player, rank string) (Outcome, bool) {
	if g.Over || requester == nil || opponent == nil || requester != g.CurrentPlayer() {
		return "", false
	}

	var outcome Outcome
	if matched := opponent.RemoveCardsOfRank(rank); len(matched) > 0 {
		for _, card := range matched {
			requester.AddCard(card)
		}
		outcome = OutcomeDirectHit
	} else if card, ok := g.Deck.Draw(); !ok {
		outcome = OutcomeFishEmpty
		g.advanceTurn()
	} else {
		requester.AddCard(card)
		if card.Rank == rank {
			outcome = OutcomeFishHit
		} else {
			outcome = OutcomeFishMiss
			g.advanceTurn()
		}
	}

	g.Requests = append(g.Requests, Request{
		Requester: requester.ID,
		Opponent:  opponent.ID,
		Rank:      rank,
		Outcome:   outcome,
	})

	if g.Deck.Count() == 0 && g.allHandsEmpty() {
		g.Over = true
	}

	return outcome, true
}

// Winner returns the player with the most completed books, or nil when two
// or more players tie at the maximum (including an all-zero tie).
func (g *Game) Winner() *Player {
	var winner *Player
	best := -1
	tied := false
	for _, p := range g.Players {
		switch count := p.BookCount(); {
		case count > best:
			winner, best, tied = p, count, false
		case count == best:
			tied = true
		}
	}
	if tied {
		return nil
	}
	return winner
}

func (g *Game) advanceTurn() {
	g.NextTurn = (g.NextTurn + 1) % len(g.Players)
}

func (g *Game) allHandsEmpty() bool {
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}
