package domain

import "errors"

// ErrCardsNotHeld is returned when a removal references cards the hand does
// not contain. The hand is left untouched.
var ErrCardsNotHeld = errors.New("cards not in hand")

// Hand is the mutable set of cards owned by one seat. A hand never contains
// duplicate cards and only shrinks after dealing.
type Hand []Card

// Sort orders the hand in place by ascending power.
func (h Hand) Sort() {
	SortCards(h)
}

// Contains reports whether the hand holds the given card.
func (h Hand) Contains(c Card) bool {
	return ContainsCard(h, c)
}

// CountRank returns how many cards of the given rank the hand holds.
func (h Hand) CountRank(rank int32) int {
	n := 0
	for _, c := range h {
		if c.Rank == rank {
			n++
		}
	}
	return n
}

// CardsOfRank returns the hand's cards of the given rank, in hand order.
func (h Hand) CardsOfRank(rank int32) []Card {
	var out []Card
	for _, c := range h {
		if c.Rank == rank {
			out = append(out, c)
		}
	}
	return out
}

// Remove takes the given cards out of the hand. The operation is atomic: if
// any card is missing the hand is unchanged and ErrCardsNotHeld is returned.
func (h *Hand) Remove(cards []Card) error {
	if len(cards) == 0 {
		return nil
	}

	pending := make(map[Card]int, len(cards))
	for _, c := range cards {
		pending[c]++
	}
	missing := len(cards)
	for _, c := range *h {
		if pending[c] > 0 {
			pending[c]--
			missing--
		}
	}
	if missing > 0 {
		return ErrCardsNotHeld
	}

	for _, c := range cards {
		pending[c]++
	}
	updated := make(Hand, 0, len(*h)-len(cards))
	for _, c := range *h {
		if pending[c] > 0 {
			pending[c]--
			continue
		}
		updated = append(updated, c)
	}
	*h = updated
	return nil
}

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}
