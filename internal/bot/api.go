package bot

import (
	"gofish/internal/domain"
)

// Ask represents the request an AI seat decided to make on its turn.
type Ask struct {
	Opponent *domain.Player
	Rank     string
}

// Brain is the interface all bot strategies implement.
type Brain interface {
	ChooseAsk(game *domain.Game, player *domain.Player, opponents []*domain.Player) (Ask, error)
}
