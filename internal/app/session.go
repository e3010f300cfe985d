package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/joengyn/killer-13-sub000/internal/bot"
	"github.com/joengyn/killer-13-sub000/internal/domain"
)

// MinPlayers is the smallest table the session will deal for.
const MinPlayers = 2

// MaxPlayers is bounded by the deck: four seats of thirteen cards.
const MaxPlayers = domain.NumSeats

var (
	ErrBadPlayerCount         = errors.New("player count out of range")
	ErrGameOver               = errors.New("game already over")
	ErrNotYourTurn            = errors.New("not your turn")
	ErrInvalidCombination     = errors.New("cards do not form a playable combination")
	ErrDoesNotBeatTable       = errors.New("combination does not beat the table")
	ErrMustIncludeOpeningCard = errors.New("opening play must include the three of spades")
	ErrCannotPassOpening      = errors.New("cannot pass the opening turn")
	ErrMustLeadRound          = errors.New("round leader must play")
)

// Session owns one match from deal to win. It is the single writer of its
// Game: every play, human or bot, goes through SubmitPlay/SubmitPass so the
// same validation applies to both. Callers serialize access.
type Session struct {
	ID   string
	game *domain.Game
}

// NewSession shuffles, deals, seats the holder of the three of spades as the
// opener, and returns the session along with the initial events (a private
// hand event per seat, then the broadcast start event).
func NewSession(numPlayers int, rng *rand.Rand) (*Session, []Event, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadPlayerCount, numPlayers)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	deck := domain.ShuffleDeck(rng, domain.NewDeck())
	hands := domain.Deal(deck, numPlayers)

	game := domain.NewGame(hands)
	opener := game.OpeningSeat()
	game.State.SetCurrentPlayer(opener)

	s := &Session{
		ID:   uuid.New().String(),
		game: game,
	}

	events := make([]Event, 0, numPlayers+1)
	for _, p := range game.Players {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: p.Seat, Hand: p.Hand},
			Recipients: []int{p.Seat},
		})
	}
	events = append(events, Event{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{NumPlayers: numPlayers, OpeningSeat: opener},
	})

	return s, events, nil
}

// Game exposes the underlying match state. Transport adapters read it to
// label matches and bots read it to decide moves; only the session writes.
func (s *Session) Game() *domain.Game {
	return s.game
}

// SubmitPlay validates the cards against every game rule and, when legal,
// applies the play and advances the turn. The returned events describe
// everything that happened, in order.
func (s *Session) SubmitPlay(seat int, cards []domain.Card) ([]Event, error) {
	state := s.game.State
	if state.GameOver() {
		return nil, ErrGameOver
	}
	if seat != state.CurrentPlayer() {
		return nil, ErrNotYourTurn
	}
	if !domain.IsValidSet(cards) {
		return nil, ErrInvalidCombination
	}

	opening := state.IsFirstTurn()
	if opening && !domain.ContainsCard(cards, domain.ThreeOfSpades) {
		return nil, ErrMustIncludeOpeningCard
	}
	if !state.RoundOpen() && !domain.CanBeat(state.TableCombo(), cards) {
		return nil, ErrDoesNotBeatTable
	}

	player := s.game.PlayerAt(seat)
	if err := player.Hand.Remove(cards); err != nil {
		return nil, fmt.Errorf("seat %d: %w", seat, err)
	}

	state.MarkPlayerPlayed()
	state.SetTableCombo(cards)
	s.game.Discards = append(s.game.Discards, cards...)

	events := []Event{{
		Kind:    EventPlayAccepted,
		Payload: PlayAcceptedPayload{Seat: seat, Cards: cards, Opening: opening},
	}}

	if len(player.Hand) == 0 {
		player.Finished = true
		state.MarkPlayerInactive(seat)
		state.EndGame(seat)
		return append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{WinnerSeat: seat},
		}), nil
	}

	return s.advanceTurn(events), nil
}

// SubmitPass records a pass. Passing is refused on the opening turn and
// whenever the seat is leading a fresh round.
func (s *Session) SubmitPass(seat int) ([]Event, error) {
	state := s.game.State
	if state.GameOver() {
		return nil, ErrGameOver
	}
	if seat != state.CurrentPlayer() {
		return nil, ErrNotYourTurn
	}
	if state.IsFirstTurn() {
		return nil, ErrCannotPassOpening
	}
	if state.RoundOpen() {
		return nil, ErrMustLeadRound
	}

	state.MarkPlayerPassed()

	events := []Event{{
		Kind:    EventTurnPassed,
		Payload: TurnPassedPayload{Seat: seat},
	}}
	return s.advanceTurn(events), nil
}

// Autoplay asks the brain for the current seat's move and applies it through
// the normal submission path. A brain that returns an illegal move forfeits
// the turn as a pass when possible.
func (s *Session) Autoplay(brain bot.Brain) ([]Event, error) {
	state := s.game.State
	if state.GameOver() {
		return nil, ErrGameOver
	}
	seat := state.CurrentPlayer()

	move, err := brain.CalculateMove(s.game, seat)
	if err != nil {
		move = bot.Move{Pass: true}
	}

	if !move.Pass {
		events, err := s.SubmitPlay(seat, move.Cards)
		if err == nil {
			return events, nil
		}
	}
	return s.SubmitPass(seat)
}

// advanceTurn closes the round if everyone else has passed, then moves the
// turn cursor and appends the resulting events.
func (s *Session) advanceTurn(events []Event) []Event {
	state := s.game.State

	if state.AllOthersPassed() {
		winner := state.LastPlayerToPlay()
		state.ResetRound()
		state.SetCurrentPlayer(winner)
		events = append(events,
			Event{Kind: EventRoundReset, Payload: RoundResetPayload{WinnerSeat: winner}},
			Event{Kind: EventTurnChanged, Payload: TurnChangedPayload{Seat: winner}},
		)
		return events
	}

	if state.NextPlayer() {
		events = append(events, Event{
			Kind:    EventTurnChanged,
			Payload: TurnChangedPayload{Seat: state.CurrentPlayer()},
		})
	}
	return events
}
