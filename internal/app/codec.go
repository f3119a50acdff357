package app

import (
	"encoding/json"
	"fmt"

	"gofish/internal/domain"
)

// EncodeMatch serializes the match into its persistence snapshot.
func (s *Service) EncodeMatch(m *Match) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode match %s: %w", m.ID, err)
	}
	return data, nil
}

// DecodeMatch restores a match from its persistence snapshot, rebuilding the
// AI agents for its AI seats. A snapshot whose cards do not add back up to
// one standard deck is corrupt and rejected before it can enter play.
func (s *Service) DecodeMatch(data []byte) (*Match, error) {
	var m Match
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode match snapshot: %w", err)
	}
	if m.Game == nil || m.Game.Deck == nil {
		return nil, fmt.Errorf("corrupt match snapshot %s: missing game state", m.ID)
	}
	if len(m.Seats) != len(m.Game.Players) {
		return nil, fmt.Errorf("corrupt match snapshot %s: %d seats for %d players", m.ID, len(m.Seats), len(m.Game.Players))
	}
	if err := validateConservation(m.Game); err != nil {
		return nil, fmt.Errorf("corrupt match snapshot %s: %w", m.ID, err)
	}
	m.bots = newAgents(m.Seats, s.rng)
	return &m, nil
}

// validateConservation checks that the deck, every hand and every book
// together hold each of the 52 standard cards exactly once.
func validateConservation(game *domain.Game) error {
	seen := make(map[domain.Card]int, 52)
	total := 0

	count := func(c domain.Card) {
		seen[c]++
		total++
	}

	for _, c := range game.Deck.Cards {
		count(c)
	}
	for _, p := range game.Players {
		for _, c := range p.Hand {
			count(c)
		}
		for _, book := range p.Books {
			if len(book) != 4 {
				return fmt.Errorf("card conservation violated: %s holds a %d-card book", p.ID, len(book))
			}
			for _, c := range book {
				count(c)
			}
		}
	}

	if total != 52 {
		return fmt.Errorf("card conservation violated: %d cards in play, want 52", total)
	}
	for card, n := range seen {
		if n != 1 {
			return fmt.Errorf("card conservation violated: %s appears %d times", card, n)
		}
		if card.Icon() == "" {
			return fmt.Errorf("card conservation violated: unknown card %s", card)
		}
	}
	return nil
}
