package bot

import (
	"sort"

	botinternal "github.com/joengyn/killer-13-sub000/internal/bot/internal"
	"github.com/joengyn/killer-13-sub000/internal/domain"
)

// CountingBrain layers card counting on top of hand evaluation. It tracks
// which cards remain unseen via the match discard pile, spends guaranteed
// winners deliberately, and shifts into blocker mode when an opponent is
// close to going out.
type CountingBrain struct{}

func (b *CountingBrain) CalculateMove(game *domain.Game, seat int) (Move, error) {
	player := game.PlayerAt(seat)
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	hand := player.Hand.Clone()
	hand.Sort()

	if game.State.IsFirstTurn() && hand.Contains(domain.ThreeOfSpades) {
		return b.openingMove(player, hand)
	}

	stats := botinternal.AnalyzeHand(player.Hand, game.Discards)
	blocking := opponentNearlyOut(game, seat)

	table := game.TableCombination()
	validMoves := botinternal.GetValidMoves(player.Hand, table)
	if len(validMoves) == 0 {
		return Move{Pass: true}, nil
	}

	currentScore := botinternal.EvaluateHand(player.Hand)

	type candidate struct {
		move   botinternal.ValidMove
		delta  float64
		power  int32
		isBoss bool
	}

	var candidates []candidate
	for _, m := range validMoves {
		remaining := hand.Clone()
		if err := remaining.Remove(m.Cards); err != nil {
			continue
		}
		delta := float64(botinternal.EvaluateHand(remaining) - currentScore)
		combo := domain.Identify(m.Cards)

		isBoss := combo.Type == domain.Single && domain.ContainsCard(stats.BossSingles, m.Cards[0])

		if len(remaining) == 0 {
			delta += 10000.0
		}

		// A boss card is worth saving while we dominate, and worth
		// spending the moment control matters.
		if isBoss {
			if stats.Dominance > 0.6 && !blocking && len(player.Hand) > 3 {
				delta -= 10.0
			} else {
				delta += 20.0
			}
		}

		if blocking {
			if combo.Type == domain.Single && combo.Value < 40 {
				delta -= 100.0
			}
			if isBoss {
				delta += 50.0
			}
		}

		candidates = append(candidates, candidate{
			move:   m,
			delta:  delta,
			power:  combo.Value,
			isBoss: isBoss,
		})
	}
	if len(candidates) == 0 {
		return Move{Pass: true}, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].delta != candidates[j].delta {
			return candidates[i].delta > candidates[j].delta
		}
		if blocking || candidates[i].isBoss {
			return candidates[i].power > candidates[j].power
		}
		return candidates[i].power < candidates[j].power
	})

	if table.Type != domain.Invalid {
		if candidates[0].delta < -15.0 && !candidates[0].isBoss {
			return Move{Pass: true}, nil
		}
	}

	return Move{Cards: candidates[0].move.Cards}, nil
}

// openingMove picks the best first-turn play containing the three of
// spades, preferring the move that keeps the strongest remaining hand.
func (b *CountingBrain) openingMove(player *domain.Player, hand domain.Hand) (Move, error) {
	moves := botinternal.GetValidMoves(player.Hand, domain.Combination{Type: domain.Invalid})
	moves = filterOpening(moves, true)
	if len(moves) == 0 {
		return Move{Cards: []domain.Card{domain.ThreeOfSpades}}, nil
	}

	best := moves[0]
	bestScore := -1 << 31
	for _, m := range moves {
		remaining := hand.Clone()
		if err := remaining.Remove(m.Cards); err != nil {
			continue
		}
		if score := botinternal.EvaluateHand(remaining); score > bestScore {
			best, bestScore = m, score
		}
	}
	return Move{Cards: best.Cards}, nil
}

// opponentNearlyOut reports whether any other seat still in the round is
// three cards or fewer from winning.
func opponentNearlyOut(game *domain.Game, seat int) bool {
	for _, p := range game.Players {
		if p == nil || p.Seat == seat || p.Finished {
			continue
		}
		if game.State.PassedThisRound(p.Seat) {
			continue
		}
		if n := len(p.Hand); n > 0 && n <= 3 {
			return true
		}
	}
	return false
}
