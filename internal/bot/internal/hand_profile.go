package internal

import (
	"github.com/joengyn/killer-13-sub000/internal/domain"
)

// HandProfile is a structural breakdown of a hand: how many of each
// combination shape it decomposes into, greedily, longest shapes first.
type HandProfile struct {
	Twos          int
	Quads         int
	PairRuns      int
	PairRunCards  int
	LongestRun    int
	Straights     int
	StraightCards int
	LongestStr    int
	Triples       int
	Pairs         int
	Singles       int
	HighSingles   int
	LowSingles    int
}

// ProfileHand decomposes a hand into its strongest shapes. Extraction order
// matters: bombs are pulled first so a quad is never split into two pairs,
// then straights, then the leftover n-of-a-kinds.
func ProfileHand(hand []domain.Card) HandProfile {
	p := HandProfile{}

	cards := make([]domain.Card, len(hand))
	copy(cards, hand)
	domain.SortCards(cards)

	for _, c := range cards {
		if c.Rank == domain.RankTwo {
			p.Twos++
		}
	}

	cards, p.Quads = extractQuads(cards)

	var runs runStats
	cards, runs = extractPairRuns(cards)
	p.PairRuns = runs.Count
	p.PairRunCards = runs.Cards
	p.LongestRun = runs.MaxPairs

	var strs straightStats
	cards, strs = extractStraights(cards)
	p.Straights = strs.Count
	p.StraightCards = strs.Cards
	p.LongestStr = strs.MaxLen

	cards, p.Triples = extractTriples(cards)
	cards, p.Pairs = extractPairs(cards)

	for _, c := range cards {
		if c.Rank == domain.RankTwo {
			continue
		}
		p.Singles++
		if c.Rank >= domain.RankJack {
			p.HighSingles++
		} else {
			p.LowSingles++
		}
	}
	return p
}
