package bot

import (
	"errors"
	"math/rand"
	"time"

	"gofish/internal/domain"
)

// ErrNoOpponents is returned when an agent is asked to move with nobody to ask.
var ErrNoOpponents = errors.New("no opponents to ask")

// RandomBrain picks a uniformly random opponent and a uniformly random rank
// from its own hand.
type RandomBrain struct {
	rng *rand.Rand
}

// NewRandomBrain constructs a RandomBrain with the provided rng or a
// time-seeded default.
func NewRandomBrain(rng *rand.Rand) *RandomBrain {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomBrain{rng: rng}
}

// ChooseAsk implements Brain. With an empty hand there is no rank to ask for,
// so the bot requests the empty rank: it matches zero cards and resolves as a
// fish, which keeps play moving until the deck runs out.
func (b *RandomBrain) ChooseAsk(game *domain.Game, player *domain.Player, opponents []*domain.Player) (Ask, error) {
	if len(opponents) == 0 {
		return Ask{}, ErrNoOpponents
	}
	if len(player.Hand) == 0 {
		return Ask{Opponent: opponents[0]}, nil
	}
	return Ask{
		Opponent: opponents[b.rng.Intn(len(opponents))],
		Rank:     player.Hand[b.rng.Intn(len(player.Hand))].Rank,
	}, nil
}
