package domain

// Player holds one seat's hand and completed books. The ID is seat-scoped;
// the pairing with a persistent user identity is owned by the match layer.
type Player struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Icon  string   `json:"icon"`
	Hand  []Card   `json:"hand"`
	Books [][]Card `json:"books"`
}

// AddCard appends the card to the hand, then moves any completed 4-of-a-kind
// out of the hand into the books pile. A hand never holds four cards of one
// rank between calls; at most one book can complete per added card.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)

	count := 0
	for _, c := range p.Hand {
		if c.Rank == card.Rank {
			count++
		}
	}
	if count < 4 {
		return
	}

	book := p.RemoveCardsOfRank(card.Rank)
	p.Books = append(p.Books, book)
}

// RemoveCardsOfRank extracts and returns every hand card of the given rank.
// The result may be empty; asking for a rank the player does not hold is a
// normal outcome.
func (p *Player) RemoveCardsOfRank(rank string) []Card {
	var matched []Card
	kept := p.Hand[:0]
	for _, c := range p.Hand {
		if c.Rank == rank {
			matched = append(matched, c)
			continue
		}
		kept = append(kept, c)
	}
	p.Hand = kept
	return matched
}

// HasRank reports whether the hand holds at least one card of the rank.
func (p *Player) HasRank(rank string) bool {
	for _, c := range p.Hand {
		if c.Rank == rank {
			return true
		}
	}
	return false
}

// BookCount returns the number of completed books.
func (p *Player) BookCount() int {
	return len(p.Books)
}
