package bot

import (
	"math/rand"
	"testing"

	"gofish/internal/domain"
)

func TestChooseAskNoOpponents(t *testing.T) {
	brain := NewRandomBrain(rand.New(rand.NewSource(1)))
	player := &domain.Player{ID: "player-0", Hand: []domain.Card{{Rank: "ace", Suit: "spades"}}}

	if _, err := brain.ChooseAsk(nil, player, nil); err != ErrNoOpponents {
		t.Fatalf("err = %v, want ErrNoOpponents", err)
	}
}

func TestChooseAskEmptyHand(t *testing.T) {
	brain := NewRandomBrain(rand.New(rand.NewSource(1)))
	player := &domain.Player{ID: "player-0"}
	opponents := []*domain.Player{
		{ID: "player-1", Hand: []domain.Card{{Rank: "two", Suit: "hearts"}}},
	}

	ask, err := brain.ChooseAsk(nil, player, opponents)
	if err != nil {
		t.Fatalf("ChooseAsk: %v", err)
	}
	if ask.Opponent != opponents[0] {
		t.Errorf("opponent = %v, want the first opponent", ask.Opponent)
	}
	if ask.Rank != "" {
		t.Errorf("rank = %q, want empty for a forced fish", ask.Rank)
	}
}

func TestChooseAskPicksFromHand(t *testing.T) {
	brain := NewRandomBrain(rand.New(rand.NewSource(7)))
	player := &domain.Player{ID: "player-0", Hand: []domain.Card{
		{Rank: "ace", Suit: "spades"},
		{Rank: "king", Suit: "hearts"},
		{Rank: "two", Suit: "clubs"},
	}}
	opponents := []*domain.Player{
		{ID: "player-1"},
		{ID: "player-2"},
	}

	for i := 0; i < 20; i++ {
		ask, err := brain.ChooseAsk(nil, player, opponents)
		if err != nil {
			t.Fatalf("ChooseAsk: %v", err)
		}
		if ask.Opponent != opponents[0] && ask.Opponent != opponents[1] {
			t.Errorf("opponent %v is not one of the candidates", ask.Opponent)
		}
		if !player.HasRank(ask.Rank) {
			t.Errorf("rank %q is not in the player's hand", ask.Rank)
		}
	}
}

func TestNewRandomBrainNilSource(t *testing.T) {
	brain := NewRandomBrain(nil)
	if brain == nil || brain.rng == nil {
		t.Fatalf("a nil source must fall back to a seeded generator")
	}
}
