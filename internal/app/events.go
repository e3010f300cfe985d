package app

import "github.com/joengyn/killer-13-sub000/internal/domain"

// EventKind identifies emitted game events for transport dispatch.
type EventKind string

const (
	EventGameStarted  EventKind = "game_started"
	EventHandDealt    EventKind = "hand_dealt"
	EventPlayAccepted EventKind = "play_accepted"
	EventTurnPassed   EventKind = "turn_passed"
	EventRoundReset   EventKind = "round_reset"
	EventTurnChanged  EventKind = "turn_changed"
	EventGameEnded    EventKind = "game_ended"
)

// Event is an app-level event with optional targeted recipient seats.
// An empty Recipients slice means broadcast.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int
}

type GameStartedPayload struct {
	NumPlayers  int
	OpeningSeat int
}

type HandDealtPayload struct {
	Seat int
	Hand []domain.Card
}

type PlayAcceptedPayload struct {
	Seat    int
	Cards   []domain.Card
	Opening bool
}

type TurnPassedPayload struct {
	Seat int
}

// RoundResetPayload announces a round win: every other seat passed, the
// table clears, and the winner leads the next round.
type RoundResetPayload struct {
	WinnerSeat int
}

type TurnChangedPayload struct {
	Seat int
}

type GameEndedPayload struct {
	WinnerSeat int
}
