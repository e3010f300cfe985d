package domain

import "math/rand"

// CardsPerHand is the number of cards dealt to each seat.
const CardsPerHand = 13

// NumSeats is the number of seats at a table.
const NumSeats = 4

// NewDeck returns an ordered 52-card deck, one card per (rank, suit) pair.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for r := RankThree; r <= RankTwo; r++ {
		for s := SuitSpades; s <= SuitHearts; s++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// ShuffleDeck returns a Fisher-Yates shuffled copy of the given deck using the
// supplied source of randomness, so deals are reproducible under a fixed seed.
func ShuffleDeck(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal distributes 13 cards to each of numPlayers hands round-robin: the first
// card goes to hand 0, the second to hand 1, and so on. Hands come back sorted.
func Deal(deck []Card, numPlayers int) []Hand {
	hands := make([]Hand, numPlayers)
	for i := range hands {
		hands[i] = make(Hand, 0, CardsPerHand)
	}
	for i := 0; i < numPlayers*CardsPerHand && i < len(deck); i++ {
		hands[i%numPlayers] = append(hands[i%numPlayers], deck[i])
	}
	for i := range hands {
		hands[i].Sort()
	}
	return hands
}
