package app

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/joengyn/killer-13-sub000/internal/domain"
)

func newTestSession(t *testing.T, numPlayers int) (*Session, []Event) {
	t.Helper()
	s, events, err := NewSession(numPlayers, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	return s, events
}

func TestNewSessionDealsAndSeatsOpener(t *testing.T) {
	s, events := newTestSession(t, 4)
	game := s.Game()

	for _, p := range game.Players {
		if len(p.Hand) != domain.CardsPerHand {
			t.Fatalf("seat %d holds %d cards, want %d", p.Seat, len(p.Hand), domain.CardsPerHand)
		}
	}

	opener := game.State.CurrentPlayer()
	if !game.PlayerAt(opener).Hand.Contains(domain.ThreeOfSpades) {
		t.Fatalf("seat %d leads but does not hold the three of spades", opener)
	}

	if len(events) != 5 {
		t.Fatalf("len(events) = %d, want 4 hands + 1 start", len(events))
	}
	for i := 0; i < 4; i++ {
		ev := events[i]
		if ev.Kind != EventHandDealt {
			t.Fatalf("events[%d].Kind = %s, want %s", i, ev.Kind, EventHandDealt)
		}
		payload := ev.Payload.(HandDealtPayload)
		if len(ev.Recipients) != 1 || ev.Recipients[0] != payload.Seat {
			t.Fatalf("hand event for seat %d addressed to %v", payload.Seat, ev.Recipients)
		}
	}
	if events[4].Kind != EventGameStarted {
		t.Fatalf("events[4].Kind = %s, want %s", events[4].Kind, EventGameStarted)
	}
}

func TestNewSessionRejectsBadPlayerCounts(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		if _, _, err := NewSession(n, rand.New(rand.NewSource(1))); !errors.Is(err, ErrBadPlayerCount) {
			t.Errorf("NewSession(%d) err = %v, want ErrBadPlayerCount", n, err)
		}
	}
}

func TestOpeningPlayRules(t *testing.T) {
	s, _ := newTestSession(t, 4)
	game := s.Game()
	opener := game.State.CurrentPlayer()

	if _, err := s.SubmitPass(opener); !errors.Is(err, ErrCannotPassOpening) {
		t.Fatalf("pass on opening turn err = %v, want ErrCannotPassOpening", err)
	}

	if _, err := s.SubmitPlay((opener+1)%4, nil); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("out of turn err = %v, want ErrNotYourTurn", err)
	}

	// Any single except the three of spades must be refused.
	hand := game.PlayerAt(opener).Hand
	for _, c := range hand {
		if c == domain.ThreeOfSpades {
			continue
		}
		if _, err := s.SubmitPlay(opener, []domain.Card{c}); !errors.Is(err, ErrMustIncludeOpeningCard) {
			t.Fatalf("opening without the three of spades err = %v", err)
		}
		break
	}

	events, err := s.SubmitPlay(opener, []domain.Card{domain.ThreeOfSpades})
	if err != nil {
		t.Fatal(err)
	}
	payload := events[0].Payload.(PlayAcceptedPayload)
	if events[0].Kind != EventPlayAccepted || !payload.Opening {
		t.Fatalf("events[0] = %+v, want an opening play_accepted", events[0])
	}
	if game.State.IsFirstTurn() {
		t.Fatal("first-turn flag should clear after the opening play")
	}
	if len(game.PlayerAt(opener).Hand) != domain.CardsPerHand-1 {
		t.Fatal("opening card was not removed from the hand")
	}
}

func TestRoundResolution(t *testing.T) {
	s, _ := newTestSession(t, 4)
	game := s.Game()
	opener := game.State.CurrentPlayer()

	if _, err := s.SubmitPlay(opener, []domain.Card{domain.ThreeOfSpades}); err != nil {
		t.Fatal(err)
	}

	// The three remaining seats pass in turn; the last pass closes the
	// round and hands the lead back to the opener.
	var last []Event
	for i := 0; i < 3; i++ {
		seat := game.State.CurrentPlayer()
		if seat == opener {
			t.Fatalf("turn returned to the opener after %d passes", i)
		}
		events, err := s.SubmitPass(seat)
		if err != nil {
			t.Fatal(err)
		}
		last = events
	}

	kinds := []EventKind{}
	for _, ev := range last {
		kinds = append(kinds, ev.Kind)
	}
	if len(last) != 3 || last[1].Kind != EventRoundReset {
		t.Fatalf("final pass events = %v, want pass, round_reset, turn_changed", kinds)
	}
	if got := last[1].Payload.(RoundResetPayload).WinnerSeat; got != opener {
		t.Fatalf("round winner = %d, want %d", got, opener)
	}

	if !game.State.RoundOpen() {
		t.Fatal("table should be clear after the round resolves")
	}
	if game.State.CurrentPlayer() != opener {
		t.Fatal("round winner should lead the next round")
	}

	if _, err := s.SubmitPass(opener); !errors.Is(err, ErrMustLeadRound) {
		t.Fatalf("leader pass err = %v, want ErrMustLeadRound", err)
	}
}

func TestSubmitPlayValidation(t *testing.T) {
	s, _ := newTestSession(t, 4)
	game := s.Game()
	opener := game.State.CurrentPlayer()

	if _, err := s.SubmitPlay(opener, nil); !errors.Is(err, ErrInvalidCombination) {
		t.Fatalf("empty play err = %v, want ErrInvalidCombination", err)
	}

	// A pair of threes of the same suit is not a real holding, but it is
	// shape-valid; the hand check must reject it instead.
	fake := []domain.Card{
		{Rank: domain.RankThree, Suit: domain.SuitSpades},
		{Rank: domain.RankThree, Suit: domain.SuitSpades},
	}
	if _, err := s.SubmitPlay(opener, fake); !errors.Is(err, domain.ErrCardsNotHeld) {
		t.Fatalf("duplicate card play err = %v, want ErrCardsNotHeld", err)
	}
}

func TestBeatValidationAgainstTable(t *testing.T) {
	s, _ := newTestSession(t, 4)
	game := s.Game()
	opener := game.State.CurrentPlayer()

	if _, err := s.SubmitPlay(opener, []domain.Card{domain.ThreeOfSpades}); err != nil {
		t.Fatal(err)
	}

	seat := game.State.CurrentPlayer()
	hand := game.PlayerAt(seat).Hand

	// A pair can never answer a single.
	for r := domain.RankThree; r <= domain.RankTwo; r++ {
		if pair := hand.CardsOfRank(r); len(pair) >= 2 {
			if _, err := s.SubmitPlay(seat, pair[:2]); !errors.Is(err, ErrDoesNotBeatTable) {
				t.Fatalf("pair against single err = %v, want ErrDoesNotBeatTable", err)
			}
			break
		}
	}

	// Any other single beats the three of spades.
	events, err := s.SubmitPlay(seat, []domain.Card{hand[len(hand)-1]})
	if err != nil {
		t.Fatal(err)
	}
	if events[0].Kind != EventPlayAccepted {
		t.Fatalf("events[0].Kind = %s, want %s", events[0].Kind, EventPlayAccepted)
	}
}

func TestWinEndsGameImmediately(t *testing.T) {
	s, _ := newTestSession(t, 4)
	game := s.Game()
	opener := game.State.CurrentPlayer()

	// Shrink the opener to just the opening card so the first play wins.
	game.PlayerAt(opener).Hand = domain.Hand{domain.ThreeOfSpades}

	events, err := s.SubmitPlay(opener, []domain.Card{domain.ThreeOfSpades})
	if err != nil {
		t.Fatal(err)
	}

	lastEvent := events[len(events)-1]
	if lastEvent.Kind != EventGameEnded {
		t.Fatalf("last event = %s, want %s", lastEvent.Kind, EventGameEnded)
	}
	if got := lastEvent.Payload.(GameEndedPayload).WinnerSeat; got != opener {
		t.Fatalf("winner = %d, want %d", got, opener)
	}
	if !game.State.GameOver() || game.State.Winner() != opener {
		t.Fatal("state should record the winner")
	}

	if _, err := s.SubmitPlay(opener, nil); !errors.Is(err, ErrGameOver) {
		t.Fatalf("play after the end err = %v, want ErrGameOver", err)
	}
	if _, err := s.SubmitPass(opener); !errors.Is(err, ErrGameOver) {
		t.Fatalf("pass after the end err = %v, want ErrGameOver", err)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a, _ := newTestSession(t, 2)
	b, _ := newTestSession(t, 2)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("session IDs %q and %q should be distinct", a.ID, b.ID)
	}
}
