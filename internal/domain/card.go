package domain

import "sort"

// Card is a single playing card in the Thirteen deck. Cards are value types:
// two cards are the same card iff rank and suit match.
type Card struct {
	Rank int32 // 0..12 (3=0, J=8, Q=9, K=10, A=11, 2=12)
	Suit int32 // 0..3 (Spades=0, Clubs=1, Diamonds=2, Hearts=3)
}

// Rank ordinals. Three is the weakest rank and Two the strongest.
const (
	RankThree int32 = iota
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
	RankTwo
)

// Suit ordinals, weakest to strongest.
const (
	SuitSpades int32 = iota
	SuitClubs
	SuitDiamonds
	SuitHearts
)

// ThreeOfSpades is the mandatory opening card for the first play of a match.
var ThreeOfSpades = Card{Rank: RankThree, Suit: SuitSpades}

// CardPower returns the total-order ordinal of a card: rank first, suit as
// tiebreak. Every card in the deck has a distinct power in 0..51.
func CardPower(c Card) int32 {
	return c.Rank*4 + c.Suit
}

// SortCards orders cards in place by ascending power.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return CardPower(cards[i]) < CardPower(cards[j])
	})
}

// ContainsCard reports whether the given card appears in the slice.
func ContainsCard(cards []Card, target Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}
