package internal

import (
	"github.com/joengyn/killer-13-sub000/internal/domain"
)

const (
	scorePig          = 20
	scoreBomb         = 30
	scoreStraightCard = 5
	scoreTriple       = 10
	scorePair         = 5
	scoreHighSingle   = 2
	scoreLowSingle    = -2
)

// EvaluateHand scores the raw strength of a hand. Higher is stronger.
// Twos and bombs dominate, connected cards are worth more than loose
// ones, and low orphan singles drag the score down.
func EvaluateHand(hand []domain.Card) int {
	p := ProfileHand(hand)

	score := 0
	score += p.Twos * scorePig
	score += (p.Quads + p.PairRuns) * scoreBomb
	score += p.StraightCards * scoreStraightCard
	score += p.PairRunCards * scoreStraightCard
	score += p.Triples * scoreTriple
	score += p.Pairs * scorePair
	score += p.HighSingles * scoreHighSingle
	score += p.LowSingles * scoreLowSingle
	return score
}
