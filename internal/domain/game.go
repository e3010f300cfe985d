package domain

// Player holds the per-seat state of a match participant.
type Player struct {
	Seat     int
	Hand     Hand
	Finished bool
}

// Game aggregates the turn/round state machine with the hands it governs.
// It is owned by exactly one session; nothing in this package retains it.
type Game struct {
	State   *GameState
	Players []*Player

	// Discards accumulates every card played this match, in play order.
	// Card-counting strategies read it to reason about unseen cards.
	Discards []Card
}

// NewGame builds a match for the given dealt hands. Seat i receives hands[i].
func NewGame(hands []Hand) *Game {
	g := &Game{State: NewGameState(len(hands))}
	for i, h := range hands {
		g.Players = append(g.Players, &Player{Seat: i, Hand: h})
	}
	return g
}

// PlayerAt returns the player at the given seat, or nil if out of range.
func (g *Game) PlayerAt(seat int) *Player {
	if seat < 0 || seat >= len(g.Players) {
		return nil
	}
	return g.Players[seat]
}

// TableCombination classifies the cards currently on the table. An empty
// table identifies as Invalid, which doubles as the "round open" signal for
// move generation.
func (g *Game) TableCombination() Combination {
	return Identify(g.State.TableCombo())
}

// OpeningSeat returns the seat holding the Three of Spades, which must lead
// the first round of the match. Returns 0 if no hand holds it, which only
// happens when the deal was not a full deck.
func (g *Game) OpeningSeat() int {
	for _, p := range g.Players {
		if p.Hand.Contains(ThreeOfSpades) {
			return p.Seat
		}
	}
	return 0
}
