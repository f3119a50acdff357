package app

import (
	"testing"

	"gofish/internal/domain"
)

func fourSeatMatch() *Match {
	seats := []Participant{
		{UserID: "u1", Name: "Alice"},
		{UserID: "u2", Name: "Bob"},
		{UserID: "bot-finley", Name: "Finley", AI: true},
		{UserID: "bot-marina", Name: "Marina", AI: true},
	}
	hands := make([][]domain.Card, len(seats))
	return buildMatch(seats, hands, nil, 0)
}

func TestMatchPlayer(t *testing.T) {
	m := fourSeatMatch()

	if p := m.Player("u2"); p != m.Game.Players[1] {
		t.Errorf("Player(u2) = %v, want seat 1", p)
	}
	if p := m.Player("stranger"); p != nil {
		t.Errorf("Player(stranger) = %v, want nil", p)
	}
}

func TestMatchUser(t *testing.T) {
	m := fourSeatMatch()

	seat, ok := m.User(m.Game.Players[2])
	if !ok || seat.UserID != "bot-finley" {
		t.Errorf("User(seat 2) = %+v (ok=%t), want bot-finley", seat, ok)
	}
	if _, ok := m.User(&domain.Player{ID: "outsider"}); ok {
		t.Errorf("User should not find a player from another match")
	}
}

func TestMatchOpponentsRotation(t *testing.T) {
	m := fourSeatMatch()

	opponents := m.Opponents(m.Game.Players[1])
	want := []int{2, 3, 0}
	if len(opponents) != len(want) {
		t.Fatalf("opponent count = %d, want %d", len(opponents), len(want))
	}
	for i, seat := range want {
		if opponents[i] != m.Game.Players[seat] {
			t.Errorf("opponents[%d] = %v, want seat %d", i, opponents[i], seat)
		}
	}

	if got := m.Opponents(&domain.Player{ID: "outsider"}); got != nil {
		t.Errorf("Opponents(outsider) = %v, want nil", got)
	}
}

func TestMatchHumans(t *testing.T) {
	m := fourSeatMatch()

	humans := m.Humans()
	if len(humans) != 2 || humans[0].UserID != "u1" || humans[1].UserID != "u2" {
		t.Errorf("humans = %+v, want u1 then u2", humans)
	}
}
