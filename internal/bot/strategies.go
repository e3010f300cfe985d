package bot

import (
	"sort"

	"github.com/joengyn/killer-13-sub000/internal/domain"
)

// SimpleBrain plays the deterministic lowest-card policy. It always
// surrenders the weakest legal answer, opens rounds with its lowest single,
// and reaches for a bomb only when a two is on the table.
type SimpleBrain struct{}

func (b *SimpleBrain) CalculateMove(game *domain.Game, seat int) (Move, error) {
	player := game.PlayerAt(seat)
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	hand := player.Hand.Clone()
	hand.Sort()

	// The opening play of the match must include the three of spades.
	// If the hand somehow lacks it, fall through to normal play.
	if game.State.IsFirstTurn() && hand.Contains(domain.ThreeOfSpades) {
		return Move{Cards: []domain.Card{domain.ThreeOfSpades}}, nil
	}

	table := game.TableCombination()
	if table.Type == domain.Invalid {
		return Move{Cards: []domain.Card{hand[0]}}, nil
	}

	if cards := b.findAnswer(hand, table); cards != nil {
		return Move{Cards: cards}, nil
	}

	// Bombs come out only against a lone two or a pair of twos.
	if domain.IsTopRankSingleOrPair(table.Cards) {
		if bomb := findBomb(hand, table.Cards); bomb != nil {
			return Move{Cards: bomb}, nil
		}
	}

	return Move{Pass: true}, nil
}

// findAnswer searches for the weakest same-type combination beating the
// table. The hand must be sorted.
func (b *SimpleBrain) findAnswer(hand domain.Hand, table domain.Combination) []domain.Card {
	switch table.Type {
	case domain.Single:
		for _, c := range hand {
			if domain.CanBeat(table.Cards, []domain.Card{c}) {
				return []domain.Card{c}
			}
		}
	case domain.Pair:
		return beatOfAKind(hand, table, 2)
	case domain.Triple:
		return beatOfAKind(hand, table, 3)
	case domain.Straight:
		return beatStraight(hand, table)
	case domain.Quad:
		for rank := int32(domain.RankThree); rank <= domain.RankTwo; rank++ {
			cards := hand.CardsOfRank(rank)
			if len(cards) == 4 && domain.CanBeat(table.Cards, cards) {
				return cards
			}
		}
	case domain.ConsecutivePairs:
		return beatPairRun(hand, table)
	}
	return nil
}

// beatOfAKind scans ranks above the table rank for the first with enough
// cards.
func beatOfAKind(hand domain.Hand, table domain.Combination, size int) []domain.Card {
	tableRank := table.Cards[0].Rank
	for rank := tableRank; rank <= domain.RankTwo; rank++ {
		cards := hand.CardsOfRank(rank)
		if len(cards) < size {
			continue
		}
		candidate := cards[:size]
		if domain.CanBeat(table.Cards, candidate) {
			return candidate
		}
	}
	return nil
}

// beatStraight builds the lowest straight of the table's length that starts
// at or above the table straight's top rank, which guarantees it wins.
func beatStraight(hand domain.Hand, table domain.Combination) []domain.Card {
	length := len(table.Cards)
	topRank := table.Cards[len(table.Cards)-1].Rank

	for start := topRank; start+int32(length)-1 < domain.RankTwo; start++ {
		candidate := buildRun(hand, start, length, 1)
		if candidate != nil && domain.CanBeat(table.Cards, candidate) {
			return candidate
		}
	}
	return nil
}

// beatPairRun answers a consecutive-pairs bomb with a stronger one of the
// same length.
func beatPairRun(hand domain.Hand, table domain.Combination) []domain.Card {
	pairs := len(table.Cards) / 2
	for start := table.Cards[0].Rank; start+int32(pairs)-1 < domain.RankTwo; start++ {
		candidate := buildRun(hand, start, pairs, 2)
		if candidate != nil && domain.CanBeat(table.Cards, candidate) {
			return candidate
		}
	}
	return nil
}

// findBomb returns the weakest bomb in hand that beats the table cards:
// quads first, ascending by rank, then three-pair runs.
func findBomb(hand domain.Hand, table []domain.Card) []domain.Card {
	for rank := int32(domain.RankThree); rank < domain.RankTwo; rank++ {
		cards := hand.CardsOfRank(rank)
		if len(cards) == 4 && domain.CanBeat(table, cards) {
			return cards
		}
	}
	for start := int32(domain.RankThree); start+int32(domain.MinConsecutivePairs)-1 < domain.RankTwo; start++ {
		candidate := buildRun(hand, start, domain.MinConsecutivePairs, 2)
		if candidate != nil && domain.CanBeat(table, candidate) {
			return candidate
		}
	}
	return nil
}

// buildRun assembles `perRank` cards of each of `length` consecutive ranks
// starting at `start`, or nil if any rank falls short. Twos never join runs.
func buildRun(hand domain.Hand, start int32, length, perRank int) []domain.Card {
	run := make([]domain.Card, 0, length*perRank)
	for offset := int32(0); offset < int32(length); offset++ {
		rank := start + offset
		if rank >= domain.RankTwo {
			return nil
		}
		cards := hand.CardsOfRank(rank)
		if len(cards) < perRank {
			return nil
		}
		run = append(run, cards[:perRank]...)
	}
	sort.Slice(run, func(i, j int) bool {
		return domain.CardPower(run[i]) < domain.CardPower(run[j])
	})
	return run
}
