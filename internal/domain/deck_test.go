package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, want 52", len(deck))
	}

	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card: %+v", c)
		}
		seen[c] = true
		if c.Rank < RankThree || c.Rank > RankTwo {
			t.Fatalf("rank out of range: %d", c.Rank)
		}
		if c.Suit < SuitSpades || c.Suit > SuitHearts {
			t.Fatalf("suit out of range: %d", c.Suit)
		}
	}
}

func TestShuffleDeckIsSeededAndNonDestructive(t *testing.T) {
	deck := NewDeck()
	a := ShuffleDeck(rand.New(rand.NewSource(7)), deck)
	b := ShuffleDeck(rand.New(rand.NewSource(7)), deck)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different shuffles at %d", i)
		}
	}
	if deck[0] != (Card{Rank: RankThree, Suit: SuitSpades}) {
		t.Fatalf("ShuffleDeck mutated its input")
	}
}

func TestDealRoundRobin(t *testing.T) {
	deck := NewDeck() // ordered: first four cards are the four threes
	hands := Deal(deck, 4)

	if len(hands) != 4 {
		t.Fatalf("hands = %d, want 4", len(hands))
	}
	for seat, h := range hands {
		if len(h) != CardsPerHand {
			t.Fatalf("seat %d got %d cards, want %d", seat, len(h), CardsPerHand)
		}
		// Round-robin over an ordered deck gives seat i one card of each rank,
		// all of suit i.
		if h[0] != (Card{Rank: RankThree, Suit: int32(seat)}) {
			t.Fatalf("seat %d lowest card = %+v", seat, h[0])
		}
	}

	// All 52 cards dealt exactly once.
	seen := make(map[Card]bool)
	for _, h := range hands {
		for _, c := range h {
			if seen[c] {
				t.Fatalf("card dealt twice: %+v", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != 52 {
		t.Fatalf("dealt %d distinct cards, want 52", len(seen))
	}
}

func TestCardPowerOrdering(t *testing.T) {
	low := Card{Rank: RankNine, Suit: SuitSpades}
	high := Card{Rank: RankNine, Suit: SuitHearts}
	if CardPower(low) >= CardPower(high) {
		t.Fatalf("suit tiebreak broken: %d >= %d", CardPower(low), CardPower(high))
	}
	if CardPower(Card{Rank: RankTwo, Suit: SuitSpades}) <= CardPower(Card{Rank: RankAce, Suit: SuitHearts}) {
		t.Fatalf("rank must dominate suit")
	}
}
