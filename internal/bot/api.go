package bot

import (
	"github.com/joengyn/killer-13-sub000/internal/domain"
)

// Move represents the decision made by the AI. An empty Cards slice with
// Pass set means the bot declines to play.
type Move struct {
	Pass  bool
	Cards []domain.Card
}

// Brain is the interface that all bot strategies must implement. It is a
// pure decision function: the caller validates and applies the returned
// move through the same path a human play takes.
type Brain interface {
	CalculateMove(game *domain.Game, seat int) (Move, error)
}
