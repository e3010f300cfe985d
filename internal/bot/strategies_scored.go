package bot

import (
	"sort"

	botinternal "github.com/joengyn/killer-13-sub000/internal/bot/internal"
	"github.com/joengyn/killer-13-sub000/internal/domain"
)

// ScoredBrain evaluates every legal move by what it leaves behind: it keeps
// the hand whose remaining structure scores highest under phase-aware
// weights, and passes when every move costs more than the tuning tolerates.
type ScoredBrain struct {
	// Tuning overrides DefaultTuning when non-nil.
	Tuning *botinternal.BotTuning
}

func (b *ScoredBrain) tuning() botinternal.BotTuning {
	if b.Tuning != nil {
		return *b.Tuning
	}
	return DefaultTuning
}

func (b *ScoredBrain) CalculateMove(game *domain.Game, seat int) (Move, error) {
	player := game.PlayerAt(seat)
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	table := game.TableCombination()
	validMoves := botinternal.GetValidMoves(player.Hand, table)
	validMoves = filterOpening(validMoves, game.State.IsFirstTurn())
	if len(validMoves) == 0 {
		return Move{Pass: true}, nil
	}

	tuning := b.tuning()
	phase := botinternal.DetectPhase(game)
	weights := tuning.ForPhase(phase)
	threat := botinternal.DetectThreat(game, seat, tuning.ThreatThreshold)
	scored := botinternal.BuildScoredMoves(player.Hand, validMoves, weights, threat)

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		// Save higher cards when scores are equal.
		return scored[i].Combo.Value < scored[j].Combo.Value
	})

	// Passing is only an option when responding, and only when every move
	// damages the hand beyond the pass threshold.
	if table.Type != domain.Invalid {
		currentScore := botinternal.ScoreHand(player.Hand, weights)
		if scored[0].Score < currentScore+tuning.PassThreshold {
			return Move{Pass: true}, nil
		}
	}

	return Move{Cards: scored[0].Move.Cards}, nil
}

// filterOpening restricts first-turn moves to those containing the three of
// spades. When nothing qualifies the original list is returned untouched.
func filterOpening(moves []botinternal.ValidMove, firstTurn bool) []botinternal.ValidMove {
	if !firstTurn {
		return moves
	}
	var opening []botinternal.ValidMove
	for _, m := range moves {
		if domain.ContainsCard(m.Cards, domain.ThreeOfSpades) {
			opening = append(opening, m)
		}
	}
	if len(opening) == 0 {
		return moves
	}
	return opening
}
