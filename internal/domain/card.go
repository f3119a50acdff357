package domain

import (
	"encoding/json"
	"fmt"
)

// Ranks lists every card rank in ascending value order.
var Ranks = []string{"two", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "jack", "queen", "king", "ace"}

// Suits lists the four card suits.
var Suits = []string{"clubs", "diamonds", "hearts", "spades"}

var rankValues = map[string]int{
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
	"jack":  11,
	"queen": 12,
	"king":  13,
	"ace":   14,
}

var validSuits = map[string]bool{
	"clubs":    true,
	"diamonds": true,
	"hearts":   true,
	"spades":   true,
}

// Card is a single playing card identified by rank and suit.
// Cards are plain values: two cards with the same rank and suit are
// interchangeable, and Card is usable as a map key.
type Card struct {
	Rank string
	Suit string
}

// RankValue returns the numeric value of the rank (two..ten map to 2..10,
// jack 11, queen 12, king 13, ace 14). Unrecognized ranks map to 0.
func (c Card) RankValue() int {
	return rankValues[c.Rank]
}

// Icon returns the client asset path for the card image, derived from the
// suit initial and rank value. Unrecognized ranks or suits yield "".
func (c Card) Icon() string {
	if c.RankValue() == 0 || !validSuits[c.Suit] {
		return ""
	}
	return fmt.Sprintf("/assets/cards/%c%d.png", c.Suit[0], c.RankValue())
}

func (c Card) String() string {
	return "the " + c.Rank + " of " + c.Suit
}

type cardJSON struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
	Icon string `json:"icon"`
}

// MarshalJSON includes the derived icon path so clients can render the card
// without knowing the asset naming scheme.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{Rank: c.Rank, Suit: c.Suit, Icon: c.Icon()})
}

// UnmarshalJSON reads rank and suit; the icon is derived, never stored.
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Rank = raw.Rank
	c.Suit = raw.Suit
	return nil
}
