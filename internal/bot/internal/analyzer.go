package internal

import (
	"github.com/joengyn/killer-13-sub000/internal/domain"
)

// BossStats summarizes what card counting can tell us about a hand.
type BossStats struct {
	UnseenCards []domain.Card
	BossSingles []domain.Card // singles in hand no unseen single can beat
	BossPairs   [][]domain.Card
	Dominance   float64 // 0 to 1, how much "control" the hand has
}

// AnalyzeHand counts unseen cards and identifies boss combinations: cards
// guaranteed to win the trick if led, given everything already played.
func AnalyzeHand(hand []domain.Card, discards []domain.Card) BossStats {
	sortedHand := make([]domain.Card, len(hand))
	copy(sortedHand, hand)
	domain.SortCards(sortedHand)
	hand = sortedHand

	unseen := removeSubset(domain.NewDeck(), discards)
	unseen = removeSubset(unseen, hand)
	domain.SortCards(unseen)

	stats := BossStats{UnseenCards: unseen}

	if len(unseen) == 0 {
		stats.Dominance = 1.0
		stats.BossSingles = hand
		return stats
	}

	highestUnseen := highestPower(unseen)
	for _, c := range hand {
		if domain.CardPower(c) > highestUnseen {
			stats.BossSingles = append(stats.BossSingles, c)
		}
	}

	unseenPairPower := highestPairPower(unseen)
	rankMap, ranks := groupByRank(hand, false)
	for _, rank := range ranks {
		cards := rankMap[rank]
		if len(cards) < 2 {
			continue
		}
		pair := []domain.Card{cards[len(cards)-2], cards[len(cards)-1]}
		if domain.CardPower(pair[1]) > unseenPairPower {
			stats.BossPairs = append(stats.BossPairs, pair)
		}
	}

	// Dominance heuristic: average power of our cards against the field's.
	handPower := 0
	for _, c := range hand {
		handPower += int(domain.CardPower(c))
	}
	avgHand := float64(handPower) / float64(len(hand))

	unseenPower := 0
	for _, c := range unseen {
		unseenPower += int(domain.CardPower(c))
	}
	avgUnseen := float64(unseenPower) / float64(len(unseen))

	stats.Dominance = avgHand / (avgHand + avgUnseen)
	return stats
}

func highestPower(cards []domain.Card) int32 {
	var max int32 = -1
	for _, c := range cards {
		if p := domain.CardPower(c); p > max {
			max = p
		}
	}
	return max
}

// highestPairPower returns the power of the strongest card in the strongest
// pair the unseen set could still form, or -1 when no pair is possible.
func highestPairPower(cards []domain.Card) int32 {
	rankMap, ranks := groupByRank(cards, false)
	var max int32 = -1
	for _, rank := range ranks {
		group := rankMap[rank]
		if len(group) < 2 {
			continue
		}
		if p := domain.CardPower(group[len(group)-1]); p > max {
			max = p
		}
	}
	return max
}
