package bot

import (
	"github.com/joengyn/killer-13-sub000/internal/domain"
)

// Agent represents an autonomous bot player occupying a seat.
type Agent struct {
	Seat     int
	Name     string
	Strategy Brain
}

// Play asks the agent to calculate its move for the current game state.
// A nil game, an empty hand, or a strategy error all fall back to a pass.
func (a *Agent) Play(game *domain.Game) (Move, error) {
	if game == nil {
		return Move{Pass: true}, nil
	}
	player := game.PlayerAt(a.Seat)
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	move, err := a.Strategy.CalculateMove(game, a.Seat)
	if err != nil {
		return Move{Pass: true}, err
	}
	return move, nil
}
