package bot

import (
	"gofish/internal/domain"
)

// Agent is an autonomous player bound to one AI-controlled seat.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent binds a strategy to the given seat identity.
func NewAgent(id, name string, strategy Brain) *Agent {
	return &Agent{ID: id, Name: name, Strategy: strategy}
}

// Ask asks the agent to pick its next request given the current game state.
func (a *Agent) Ask(game *domain.Game, player *domain.Player, opponents []*domain.Player) (Ask, error) {
	return a.Strategy.ChooseAsk(game, player, opponents)
}
