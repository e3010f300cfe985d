package domain

import "sort"

// CombinationType classifies a set of played cards.
type CombinationType int

const (
	Invalid CombinationType = iota
	Single
	Pair
	Triple
	Straight
	Quad
	ConsecutivePairs
)

// IsBomb reports whether the type can chop a top-rank single or pair.
func (t CombinationType) IsBomb() bool {
	return t == Quad || t == ConsecutivePairs
}

// Combination is a classification result over a set of cards. It carries no
// lifecycle of its own; it is recomputed from raw cards whenever needed.
type Combination struct {
	Type  CombinationType
	Cards []Card // sorted ascending by power
	Value int32  // power of the highest card
	Count int
}

// Straight length bounds. The top rank (2) can never appear in a straight.
const (
	MinStraightLen = 4
	MaxStraightLen = 9
)

// MinConsecutivePairs is the fewest pairs in a consecutive-pairs bomb.
const MinConsecutivePairs = 3

// DetectType classifies a set of cards into exactly one combination type.
func DetectType(cards []Card) CombinationType {
	switch n := len(cards); {
	case n == 0:
		return Invalid
	case n == 1:
		return Single
	case n == 2:
		if allSameRank(cards) {
			return Pair
		}
		return Invalid
	case n == 3:
		if allSameRank(cards) {
			return Triple
		}
		return Invalid
	case n == 4:
		if allSameRank(cards) {
			return Quad
		}
		if isStraight(cards) {
			return Straight
		}
		return Invalid
	default:
		if isStraight(cards) {
			return Straight
		}
		if isConsecutivePairs(cards) {
			return ConsecutivePairs
		}
		return Invalid
	}
}

// IsValidSet reports whether the cards form any legal combination.
func IsValidSet(cards []Card) bool {
	return DetectType(cards) != Invalid
}

// Identify classifies the cards and returns the full combination record.
// The input slice is not modified.
func Identify(cards []Card) Combination {
	t := DetectType(cards)
	if t == Invalid {
		return Combination{Type: Invalid}
	}
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	SortCards(sorted)
	return Combination{
		Type:  t,
		Cards: sorted,
		Value: Strength(sorted),
		Count: len(sorted),
	}
}

// Strength returns the power of the highest card in the set. It orders
// combinations of the same type and size; comparing across types is
// meaningless.
func Strength(cards []Card) int32 {
	max := int32(-1)
	for _, c := range cards {
		if p := CardPower(c); p > max {
			max = p
		}
	}
	return max
}

// CanBeat reports whether next legally beats prev on the table.
//
// Same-type combinations compare by strength, with straights and
// consecutive-pair runs additionally required to match in length. Across
// types, only a bomb (quad or consecutive pairs) beats anything, and only
// when the defender is a lone Two or a pair of Twos.
func CanBeat(prev, next []Card) bool {
	prevType := DetectType(prev)
	nextType := DetectType(next)
	if prevType == Invalid || nextType == Invalid {
		return false
	}

	if prevType == nextType {
		if (prevType == Straight || prevType == ConsecutivePairs) && len(prev) != len(next) {
			return false
		}
		return Strength(next) > Strength(prev)
	}

	if nextType.IsBomb() {
		switch prevType {
		case Single:
			return prev[0].Rank == RankTwo
		case Pair:
			return prev[0].Rank == RankTwo
		}
	}
	return false
}

func allSameRank(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	r := cards[0].Rank
	for _, c := range cards {
		if c.Rank != r {
			return false
		}
	}
	return true
}

func isStraight(cards []Card) bool {
	if len(cards) < MinStraightLen || len(cards) > MaxStraightLen {
		return false
	}
	ranks := make([]int32, len(cards))
	for i, c := range cards {
		if c.Rank == RankTwo { // 2 is categorically excluded from straights
			return false
		}
		ranks[i] = c.Rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false // duplicates or gaps both fail here
		}
	}
	return true
}

func isConsecutivePairs(cards []Card) bool {
	if len(cards) < MinConsecutivePairs*2 || len(cards)%2 != 0 {
		return false
	}
	ranks := make([]int32, len(cards))
	for i, c := range cards {
		if c.Rank == RankTwo { // 2 cannot be part of the run
			return false
		}
		ranks[i] = c.Rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	pairRanks := make([]int32, 0, len(ranks)/2)
	for i := 0; i < len(ranks); i += 2 {
		if ranks[i] != ranks[i+1] {
			return false
		}
		pairRanks = append(pairRanks, ranks[i])
	}
	for i := 1; i < len(pairRanks); i++ {
		if pairRanks[i] != pairRanks[i-1]+1 {
			return false
		}
	}
	return true
}

// IsTopRankSingleOrPair reports whether cards are a lone Two or a pair of
// Twos, the only combinations a bomb may chop.
func IsTopRankSingleOrPair(cards []Card) bool {
	switch DetectType(cards) {
	case Single, Pair:
		return cards[0].Rank == RankTwo
	}
	return false
}
