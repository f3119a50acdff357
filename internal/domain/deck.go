package domain

import "math/rand"

// Deck is an ordered pile of cards. Cards leave from the front via Draw.
type Deck struct {
	Cards []Card `json:"cards"`
}

// NewDeck returns the full 52-card deck in suit-then-rank order.
// Callers shuffle with a seeded rng so deals stay reproducible in tests.
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the deck order in place.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns the front card. The second return is false when
// the deck is empty; an empty deck is a normal game situation, not an error.
func (d *Deck) Draw() (Card, bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card, true
}

// Count returns the number of cards remaining.
func (d *Deck) Count() int {
	return len(d.Cards)
}

// InsertFront places a card at the front of the deck so it becomes the next
// draw. Used to set up deterministic scenarios.
func (d *Deck) InsertFront(card Card) {
	d.Cards = append([]Card{card}, d.Cards...)
}
