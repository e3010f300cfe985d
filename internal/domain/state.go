package domain

// playerSet is a fixed-size bitset over seat indices.
type playerSet uint8

func (s playerSet) has(i int) bool { return s&(1<<uint(i)) != 0 }

func (s *playerSet) add(i int) { *s |= 1 << uint(i) }

func (s *playerSet) remove(i int) { *s &^= 1 << uint(i) }

func (s playerSet) count() int {
	n := 0
	for ; s != 0; s &= s - 1 {
		n++
	}
	return n
}

// GameState is the authoritative turn and round record for one match. It
// tracks whose turn it is, who has passed this round, who still holds cards,
// and the combination currently on the table. Hands live with the session
// that owns the state; GameState never inspects their contents.
//
// GameState assumes a single writer. The owning session serializes access.
type GameState struct {
	numPlayers        int
	current           int
	table             []Card
	passed            playerSet
	active            playerSet
	consecutivePasses int
	lastToPlay        int
	firstTurn         bool
	winner            int
}

// NewGameState creates the state for a fresh match with all seats active,
// an empty table, and the first-turn flag set.
func NewGameState(numPlayers int) *GameState {
	s := &GameState{
		numPlayers: numPlayers,
		lastToPlay: -1,
		firstTurn:  true,
		winner:     -1,
	}
	for i := 0; i < numPlayers; i++ {
		s.active.add(i)
	}
	return s
}

// NumPlayers returns the number of seats this state tracks.
func (s *GameState) NumPlayers() int { return s.numPlayers }

// CurrentPlayer returns the seat whose turn it is.
func (s *GameState) CurrentPlayer() int { return s.current }

// SetCurrentPlayer moves the turn cursor. The session uses this to hand the
// lead to the round winner after a reset and to seat the opening player.
func (s *GameState) SetCurrentPlayer(seat int) { s.current = seat }

// TableCombo returns the cards of the most recent accepted play, or an empty
// slice when nobody has played this round. Callers must not mutate it.
func (s *GameState) TableCombo() []Card { return s.table }

// RoundOpen reports whether the current player is leading a fresh round.
func (s *GameState) RoundOpen() bool { return len(s.table) == 0 }

// IsFirstTurn reports whether no play has been accepted yet this match.
func (s *GameState) IsFirstTurn() bool { return s.firstTurn }

// IsActive reports whether the seat still holds cards.
func (s *GameState) IsActive(seat int) bool { return s.active.has(seat) }

// PassedThisRound reports whether the seat has passed since the last reset.
func (s *GameState) PassedThisRound(seat int) bool { return s.passed.has(seat) }

// ConsecutivePasses returns the number of passes since the last accepted play.
func (s *GameState) ConsecutivePasses() int { return s.consecutivePasses }

// LastPlayerToPlay returns the seat of the most recent accepted play this
// round, or -1 if nobody has played since the last reset.
func (s *GameState) LastPlayerToPlay() int { return s.lastToPlay }

// Winner returns the winning seat, or -1 while the game is running.
func (s *GameState) Winner() int { return s.winner }

// MarkPlayerPlayed records an accepted play by the current player: their pass
// flag clears, the pass streak resets, and they become the player to beat.
// The first accepted play of the match also retires the first-turn flag.
func (s *GameState) MarkPlayerPlayed() {
	s.passed.remove(s.current)
	s.consecutivePasses = 0
	s.lastToPlay = s.current
	s.firstTurn = false
}

// MarkPlayerPassed records a pass by the current player.
func (s *GameState) MarkPlayerPassed() {
	s.passed.add(s.current)
	s.consecutivePasses++
}

// SetTableCombo replaces the table combination with an owned copy of cards.
func (s *GameState) SetTableCombo(cards []Card) {
	s.table = make([]Card, len(cards))
	copy(s.table, cards)
}

// NextPlayer advances the turn cursor circularly, skipping seats that are
// inactive or have passed this round. It probes each seat at most once. If
// no seat is eligible the cursor stays put and NextPlayer returns false so
// the caller can flag the inconsistency.
func (s *GameState) NextPlayer() bool {
	probe := s.current
	for i := 0; i < s.numPlayers; i++ {
		probe = (probe + 1) % s.numPlayers
		if s.active.has(probe) && !s.passed.has(probe) {
			s.current = probe
			return true
		}
	}
	return false
}

// AllOthersPassed reports whether the round is over: somebody has played and
// every other active seat has passed. The session then awards the round to
// LastPlayerToPlay and calls ResetRound.
func (s *GameState) AllOthersPassed() bool {
	if s.lastToPlay == -1 {
		return false
	}
	for i := 0; i < s.numPlayers; i++ {
		if i == s.lastToPlay || !s.active.has(i) {
			continue
		}
		if !s.passed.has(i) {
			return false
		}
	}
	return true
}

// ResetRound clears the table and all per-round tracking. The turn cursor is
// untouched; the session explicitly seats the round winner afterward.
// Calling it twice is the same as calling it once.
func (s *GameState) ResetRound() {
	s.passed = 0
	s.table = nil
	s.consecutivePasses = 0
	s.lastToPlay = -1
}

// MarkPlayerInactive retires a seat whose hand has emptied.
func (s *GameState) MarkPlayerInactive(seat int) {
	s.active.remove(seat)
	s.passed.remove(seat)
}

// EndGame records an immediate win for the given seat. In this variant the
// match ends the moment the first hand empties.
func (s *GameState) EndGame(winner int) {
	s.winner = winner
}

// GameOver reports whether a winner has been recorded.
func (s *GameState) GameOver() bool { return s.winner != -1 }

// CheckGameOver records the last remaining active seat as the winner and
// returns true. The session normally ends the game directly via EndGame;
// this covers callers that only track seat activity.
func (s *GameState) CheckGameOver() bool {
	if s.active.count() != 1 {
		return s.winner != -1
	}
	for i := 0; i < s.numPlayers; i++ {
		if s.active.has(i) {
			s.winner = i
			break
		}
	}
	return true
}
