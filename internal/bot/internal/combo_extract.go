package internal

import (
	"sort"

	"github.com/joengyn/killer-13-sub000/internal/domain"
)

type straightStats struct {
	Count  int
	Cards  int
	MaxLen int
}

type runStats struct {
	Count    int
	Cards    int
	MaxPairs int
}

// removeSubset removes the specified cards from a source slice using multiset
// semantics. O(n*m) but n <= 13.
func removeSubset(source, subset []domain.Card) []domain.Card {
	counts := make(map[domain.Card]int, len(subset))
	for _, c := range subset {
		counts[c]++
	}

	rem := make([]domain.Card, 0, len(source))
	for _, c := range source {
		if counts[c] > 0 {
			counts[c]--
			continue
		}
		rem = append(rem, c)
	}
	return rem
}

// extractStraights greedily removes the longest straight repeatedly and
// reports how much of the hand went into straights.
func extractStraights(cards []domain.Card) ([]domain.Card, straightStats) {
	stats := straightStats{}

	for {
		rankMap, ranks := groupByRank(cards, true)

		bestStart, bestLen := -1, 0
		for i := 0; i < len(ranks); i++ {
			currLen := 1
			for j := i + 1; j < len(ranks); j++ {
				if ranks[j] != ranks[j-1]+1 {
					break
				}
				currLen++
			}
			if currLen > domain.MaxStraightLen {
				currLen = domain.MaxStraightLen
			}
			if currLen >= domain.MinStraightLen && currLen > bestLen {
				bestStart, bestLen = i, currLen
			}
		}
		if bestLen < domain.MinStraightLen {
			return cards, stats
		}

		straight := make([]domain.Card, 0, bestLen)
		for k := 0; k < bestLen; k++ {
			straight = append(straight, rankMap[ranks[bestStart+k]][0])
		}
		cards = removeSubset(cards, straight)

		stats.Count++
		stats.Cards += bestLen
		if bestLen > stats.MaxLen {
			stats.MaxLen = bestLen
		}
	}
}

// extractPairRuns greedily removes consecutive-pair bombs (3+ pairs).
func extractPairRuns(cards []domain.Card) ([]domain.Card, runStats) {
	stats := runStats{}
	if len(cards) < domain.MinConsecutivePairs*2 {
		return cards, stats
	}

	counts := make(map[int32]int)
	for _, c := range cards {
		counts[c.Rank]++
	}

	for {
		var ranks []int
		for rank, count := range counts {
			if rank == domain.RankTwo {
				continue
			}
			if count >= 2 {
				ranks = append(ranks, int(rank))
			}
		}
		sort.Ints(ranks)

		bestStart, bestLen := -1, 0
		for i := 0; i < len(ranks); i++ {
			currLen := 1
			for j := i + 1; j < len(ranks); j++ {
				if ranks[j] != ranks[j-1]+1 {
					break
				}
				currLen++
			}
			if currLen >= domain.MinConsecutivePairs && currLen > bestLen {
				bestStart, bestLen = i, currLen
			}
		}
		if bestLen < domain.MinConsecutivePairs {
			break
		}

		for k := 0; k < bestLen; k++ {
			counts[int32(ranks[bestStart+k])] -= 2
		}
		stats.Count++
		stats.Cards += bestLen * 2
		if bestLen > stats.MaxPairs {
			stats.MaxPairs = bestLen
		}
	}

	remaining := make([]domain.Card, 0, len(cards)-stats.Cards)
	for _, c := range cards {
		if counts[c.Rank] > 0 {
			remaining = append(remaining, c)
			counts[c.Rank]--
		}
	}
	return remaining, stats
}

// extractQuads removes four-of-a-kinds from a sorted hand.
func extractQuads(cards []domain.Card) ([]domain.Card, int) {
	found := 0
	for i := 0; i+3 < len(cards); {
		if cards[i].Rank == cards[i+3].Rank {
			cards = removeSubset(cards, cards[i:i+4])
			found++
			continue
		}
		i++
	}
	return cards, found
}

// extractTriples removes three-of-a-kinds from a sorted hand.
func extractTriples(cards []domain.Card) ([]domain.Card, int) {
	found := 0
	for i := 0; i+2 < len(cards); {
		if cards[i].Rank == cards[i+2].Rank {
			cards = removeSubset(cards, cards[i:i+3])
			found++
			continue
		}
		i++
	}
	return cards, found
}

// extractPairs removes pairs from a sorted hand.
func extractPairs(cards []domain.Card) ([]domain.Card, int) {
	found := 0
	for i := 0; i+1 < len(cards); {
		if cards[i].Rank == cards[i+1].Rank {
			cards = removeSubset(cards, cards[i:i+2])
			found++
			continue
		}
		i++
	}
	return cards, found
}
