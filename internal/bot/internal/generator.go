package internal

import (
	"sort"

	"github.com/joengyn/killer-13-sub000/internal/domain"
)

// ValidMove is one legal play a strategy may choose.
type ValidMove struct {
	Cards []domain.Card
}

// GetValidMoves returns every legal play for the hand against the table
// combination. An Invalid table combination means the player is leading and
// may open with anything.
func GetValidMoves(hand []domain.Card, table domain.Combination) []ValidMove {
	sorted := make([]domain.Card, len(hand))
	copy(sorted, hand)
	domain.SortCards(sorted)

	var moves []ValidMove

	if table.Type == domain.Invalid {
		moves = append(moves, findAllSingles(sorted)...)
		moves = append(moves, findAllPairs(sorted)...)
		moves = append(moves, findAllTriples(sorted)...)
		moves = append(moves, findAllQuads(sorted)...)
		moves = append(moves, findAllStraights(sorted)...)
		moves = append(moves, findAllPairRuns(sorted)...)
		return moves
	}

	switch table.Type {
	case domain.Single:
		moves = append(moves, findBeating(findAllSingles(sorted), table.Cards)...)
	case domain.Pair:
		moves = append(moves, findBeating(findAllPairs(sorted), table.Cards)...)
	case domain.Triple:
		moves = append(moves, findBeating(findAllTriples(sorted), table.Cards)...)
	case domain.Straight:
		moves = append(moves, findBeating(findAllStraights(sorted), table.Cards)...)
	case domain.Quad:
		moves = append(moves, findBeating(findAllQuads(sorted), table.Cards)...)
	case domain.ConsecutivePairs:
		moves = append(moves, findBeating(findAllPairRuns(sorted), table.Cards)...)
	}

	// Bombs may chop a lone Two or a pair of Twos regardless of type.
	if domain.IsTopRankSingleOrPair(table.Cards) {
		choppers := append(findAllQuads(sorted), findAllPairRuns(sorted)...)
		moves = append(moves, findBeating(choppers, table.Cards)...)
	}

	return moves
}

func findBeating(candidates []ValidMove, prev []domain.Card) []ValidMove {
	var out []ValidMove
	for _, m := range candidates {
		if domain.CanBeat(prev, m.Cards) {
			out = append(out, m)
		}
	}
	return out
}

func findAllSingles(hand []domain.Card) []ValidMove {
	var moves []ValidMove
	for _, c := range hand {
		moves = append(moves, ValidMove{Cards: []domain.Card{c}})
	}
	return moves
}

func findAllPairs(hand []domain.Card) []ValidMove {
	var moves []ValidMove
	for i := 0; i < len(hand)-1; i++ {
		for j := i + 1; j < len(hand); j++ {
			if hand[i].Rank != hand[j].Rank {
				continue
			}
			moves = append(moves, ValidMove{Cards: []domain.Card{hand[i], hand[j]}})
		}
	}
	return moves
}

func findAllTriples(hand []domain.Card) []ValidMove {
	var moves []ValidMove
	for i := 0; i < len(hand)-2; i++ {
		for j := i + 1; j < len(hand)-1; j++ {
			for k := j + 1; k < len(hand); k++ {
				if hand[i].Rank != hand[j].Rank || hand[j].Rank != hand[k].Rank {
					continue
				}
				moves = append(moves, ValidMove{Cards: []domain.Card{hand[i], hand[j], hand[k]}})
			}
		}
	}
	return moves
}

func findAllQuads(hand []domain.Card) []ValidMove {
	var moves []ValidMove
	// Hand is sorted, so quads are adjacent.
	for i := 0; i+3 < len(hand); i++ {
		if hand[i].Rank == hand[i+3].Rank {
			quad := []domain.Card{hand[i], hand[i+1], hand[i+2], hand[i+3]}
			moves = append(moves, ValidMove{Cards: quad})
		}
	}
	return moves
}

// findAllStraights emits one straight per rank window of each legal length,
// built from the lowest available card of each rank so high suits stay in
// hand.
func findAllStraights(hand []domain.Card) []ValidMove {
	rankMap, ranks := groupByRank(hand, true)

	var moves []ValidMove
	for i := 0; i < len(ranks); i++ {
		for length := domain.MinStraightLen; i+length <= len(ranks) && length <= domain.MaxStraightLen; length++ {
			consecutive := true
			for k := 1; k < length; k++ {
				if ranks[i+k] != ranks[i+k-1]+1 {
					consecutive = false
					break
				}
			}
			if !consecutive {
				break
			}
			straight := make([]domain.Card, 0, length)
			for k := 0; k < length; k++ {
				straight = append(straight, rankMap[ranks[i+k]][0])
			}
			moves = append(moves, ValidMove{Cards: straight})
		}
	}
	return moves
}

// findAllPairRuns emits one consecutive-pairs bomb per rank window of 3+
// pairs, using the two lowest cards of each rank.
func findAllPairRuns(hand []domain.Card) []ValidMove {
	rankMap, all := groupByRank(hand, true)
	var ranks []int32
	for _, r := range all {
		if len(rankMap[r]) >= 2 {
			ranks = append(ranks, r)
		}
	}

	var moves []ValidMove
	for i := 0; i < len(ranks); i++ {
		for pairs := domain.MinConsecutivePairs; i+pairs <= len(ranks); pairs++ {
			consecutive := true
			for k := 1; k < pairs; k++ {
				if ranks[i+k] != ranks[i+k-1]+1 {
					consecutive = false
					break
				}
			}
			if !consecutive {
				break
			}
			run := make([]domain.Card, 0, pairs*2)
			for k := 0; k < pairs; k++ {
				run = append(run, rankMap[ranks[i+k]][:2]...)
			}
			moves = append(moves, ValidMove{Cards: run})
		}
	}
	return moves
}

// groupByRank maps ranks to their cards in hand order and returns the sorted
// distinct ranks. Twos are skipped when excludeTwos is set, since they can
// never appear in straights or pair runs.
func groupByRank(hand []domain.Card, excludeTwos bool) (map[int32][]domain.Card, []int32) {
	rankMap := make(map[int32][]domain.Card)
	var ranks []int32
	for _, c := range hand {
		if excludeTwos && c.Rank == domain.RankTwo {
			continue
		}
		if _, ok := rankMap[c.Rank]; !ok {
			ranks = append(ranks, c.Rank)
		}
		rankMap[c.Rank] = append(rankMap[c.Rank], c)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return rankMap, ranks
}
