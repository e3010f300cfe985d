package domain

import (
	"testing"
)

func pairOf(rank int32) []Card {
	return []Card{{Rank: rank, Suit: SuitSpades}, {Rank: rank, Suit: SuitClubs}}
}

func quadOf(rank int32) []Card {
	return []Card{
		{Rank: rank, Suit: SuitSpades}, {Rank: rank, Suit: SuitClubs},
		{Rank: rank, Suit: SuitDiamonds}, {Rank: rank, Suit: SuitHearts},
	}
}

// straightFrom builds a straight of the given length starting at startRank,
// all spades.
func straightFrom(startRank int32, length int) []Card {
	out := make([]Card, 0, length)
	for i := int32(0); i < int32(length); i++ {
		out = append(out, Card{Rank: startRank + i, Suit: SuitSpades})
	}
	return out
}

// pairRunFrom builds consecutive pairs starting at startRank, spades+clubs.
func pairRunFrom(startRank int32, pairs int) []Card {
	out := make([]Card, 0, pairs*2)
	for i := int32(0); i < int32(pairs); i++ {
		out = append(out, Card{Rank: startRank + i, Suit: SuitSpades}, Card{Rank: startRank + i, Suit: SuitClubs})
	}
	return out
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		want  CombinationType
	}{
		{"empty", nil, Invalid},
		{"single", []Card{{Rank: RankThree, Suit: SuitSpades}}, Single},
		{"single two", []Card{{Rank: RankTwo, Suit: SuitHearts}}, Single},
		{"pair", pairOf(RankFive), Pair},
		{"mismatched pair", []Card{{Rank: RankFour, Suit: 0}, {Rank: RankFive, Suit: 0}}, Invalid},
		{"triple", []Card{{Rank: RankFive, Suit: 0}, {Rank: RankFive, Suit: 1}, {Rank: RankFive, Suit: 2}}, Triple},
		{"quad", quadOf(RankNine), Quad},
		{"straight of three too short", straightFrom(RankThree, 3), Invalid},
		{"straight of four", straightFrom(RankThree, 4), Straight},
		{"straight of five", straightFrom(RankEight, 5), Straight},
		{"straight of nine", straightFrom(RankThree, 9), Straight},
		{"straight of ten too long", straightFrom(RankThree, 10), Invalid},
		{"straight touching two", straightFrom(RankQueen, 4), Invalid}, // Q-K-A-2
		{"straight with duplicate rank", []Card{
			{Rank: RankThree, Suit: 0}, {Rank: RankFour, Suit: 0},
			{Rank: RankFour, Suit: 1}, {Rank: RankFive, Suit: 0},
		}, Invalid},
		{"straight with gap", []Card{
			{Rank: RankThree, Suit: 0}, {Rank: RankFour, Suit: 0},
			{Rank: RankSix, Suit: 0}, {Rank: RankSeven, Suit: 0},
		}, Invalid},
		{"three consecutive pairs", pairRunFrom(RankThree, 3), ConsecutivePairs},
		{"four consecutive pairs", pairRunFrom(RankFive, 4), ConsecutivePairs},
		{"consecutive pairs with gap", append(pairRunFrom(RankThree, 2), pairOf(RankSix)...), Invalid},
		{"consecutive pairs touching two", pairRunFrom(RankKing, 3), Invalid}, // K-A-2
		{"two pairs only", pairRunFrom(RankThree, 2), Invalid},
		{"odd sized pile", append(pairRunFrom(RankThree, 3), Card{Rank: RankNine, Suit: 0}), Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectType(tt.cards); got != tt.want {
				t.Errorf("DetectType() = %v, want %v", got, tt.want)
			}
			if IsValidSet(tt.cards) != (tt.want != Invalid) {
				t.Errorf("IsValidSet() disagrees with DetectType()")
			}
		})
	}
}

func TestIdentify(t *testing.T) {
	combo := Identify([]Card{{Rank: RankSix, Suit: SuitHearts}, {Rank: RankSix, Suit: SuitSpades}})
	if combo.Type != Pair || combo.Count != 2 {
		t.Fatalf("unexpected combination: %+v", combo)
	}
	if combo.Value != CardPower(Card{Rank: RankSix, Suit: SuitHearts}) {
		t.Fatalf("strength should come from the heart six, got %d", combo.Value)
	}
	if combo.Cards[0].Suit != SuitSpades {
		t.Fatalf("cards should be sorted ascending, got %+v", combo.Cards)
	}
}

func TestCanBeat(t *testing.T) {
	tests := []struct {
		name string
		prev []Card
		next []Card
		want bool
	}{
		{"higher single beats lower", []Card{{Rank: RankFour, Suit: 0}}, []Card{{Rank: RankFive, Suit: 0}}, true},
		{"lower single loses", []Card{{Rank: RankFive, Suit: 0}}, []Card{{Rank: RankFour, Suit: 3}}, false},
		{"same rank higher suit wins", []Card{{Rank: RankNine, Suit: SuitSpades}}, []Card{{Rank: RankNine, Suit: SuitHearts}}, true},
		{"same rank lower suit loses", []Card{{Rank: RankNine, Suit: SuitHearts}}, []Card{{Rank: RankNine, Suit: SuitSpades}}, false},
		{"higher pair beats lower pair", pairOf(RankSix), []Card{{Rank: RankSeven, Suit: 2}, {Rank: RankSeven, Suit: 3}}, true},
		{"pair never beats single", []Card{{Rank: RankThree, Suit: 0}}, pairOf(RankSix), false},
		{"single never beats pair", pairOf(RankThree), []Card{{Rank: RankAce, Suit: 3}}, false},
		{"straight beats smaller straight of same length", straightFrom(RankThree, 5), straightFrom(RankFour, 5), true},
		{"longer straight never beats shorter", straightFrom(RankThree, 4), straightFrom(RankThree, 5), false},
		{"shorter straight never beats longer", straightFrom(RankThree, 5), straightFrom(RankFour, 4), false},
		{"quad beats smaller quad", quadOf(RankFive), quadOf(RankSix), true},
		{"quad chops single two", []Card{{Rank: RankTwo, Suit: SuitSpades}}, quadOf(RankFive), true},
		{"quad chops pair of twos", pairOf(RankTwo), quadOf(RankFive), true},
		{"pair run chops single two", []Card{{Rank: RankTwo, Suit: SuitHearts}}, pairRunFrom(RankThree, 3), true},
		{"pair run chops pair of twos", pairOf(RankTwo), pairRunFrom(RankThree, 3), true},
		{"quad does not chop single ace", []Card{{Rank: RankAce, Suit: 0}}, quadOf(RankFive), false},
		{"quad does not chop pair of kings", pairOf(RankKing), quadOf(RankFive), false},
		{"pair run does not chop triple of twos", []Card{{Rank: RankTwo, Suit: 0}, {Rank: RankTwo, Suit: 1}, {Rank: RankTwo, Suit: 2}}, pairRunFrom(RankThree, 3), false},
		{"pair run does not chop quad", quadOf(RankThree), pairRunFrom(RankFour, 3), false},
		{"quad does not chop pair run", pairRunFrom(RankThree, 3), quadOf(RankAce), false},
		{"bigger pair run beats smaller of same length", pairRunFrom(RankThree, 3), pairRunFrom(RankFour, 3), true},
		{"longer pair run never beats shorter", pairRunFrom(RankThree, 3), pairRunFrom(RankThree, 4), false},
		{"invalid attacker", []Card{{Rank: RankFour, Suit: 0}}, []Card{{Rank: RankFour, Suit: 1}, {Rank: RankFive, Suit: 1}}, false},
		{"invalid defender", nil, []Card{{Rank: RankFour, Suit: 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanBeat(tt.prev, tt.next); got != tt.want {
				t.Errorf("CanBeat() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Within one type and size, beats is antisymmetric and ties mean equal
// strength.
func TestCanBeatAntisymmetry(t *testing.T) {
	combos := [][]Card{
		{{Rank: RankFive, Suit: SuitClubs}},
		{{Rank: RankFive, Suit: SuitDiamonds}},
		pairOf(RankNine),
		{{Rank: RankNine, Suit: SuitDiamonds}, {Rank: RankNine, Suit: SuitHearts}},
		straightFrom(RankThree, 5),
		straightFrom(RankFour, 5),
	}
	for i, a := range combos {
		for j, b := range combos {
			if DetectType(a) != DetectType(b) || len(a) != len(b) {
				continue
			}
			ab, ba := CanBeat(a, b), CanBeat(b, a)
			if ab && ba {
				t.Fatalf("combos %d and %d beat each other", i, j)
			}
			if !ab && !ba && Strength(a) != Strength(b) {
				t.Fatalf("combos %d and %d tie with unequal strength", i, j)
			}
		}
	}
}
