package nakama

import (
	"encoding/json"

	"github.com/joengyn/killer-13-sub000/internal/domain"
)

// wireCard is the JSON card representation shared with clients. Rank and
// suit use the engine ordinals: rank 0 is Three through 12 for Two, suit
// 0..3 is spades, clubs, diamonds, hearts.
type wireCard struct {
	Rank int32 `json:"rank"`
	Suit int32 `json:"suit"`
}

type playCardsRequest struct {
	Cards []wireCard `json:"cards"`
}

type matchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

type playerSnapshot struct {
	UserID         string `json:"user_id"`
	Seat           int    `json:"seat"`
	IsOwner        bool   `json:"is_owner"`
	IsBot          bool   `json:"is_bot"`
	DisplayName    string `json:"display_name"`
	CardsRemaining int    `json:"cards_remaining"`
}

type matchSnapshotMsg struct {
	Seats     []string         `json:"seats"`
	OwnerSeat int              `json:"owner_seat"`
	Players   []playerSnapshot `json:"players"`
}

type gameStartedMsg struct {
	NumPlayers  int      `json:"num_players"`
	OpeningSeat int      `json:"opening_seat"`
	SeatUserIDs []string `json:"seat_user_ids"`
}

type handDealtMsg struct {
	Seat  int        `json:"seat"`
	Cards []wireCard `json:"cards"`
}

type playAcceptedMsg struct {
	Seat    int        `json:"seat"`
	Cards   []wireCard `json:"cards"`
	Opening bool       `json:"opening"`
}

type turnPassedMsg struct {
	Seat int `json:"seat"`
}

type roundResetMsg struct {
	WinnerSeat int `json:"winner_seat"`
}

type turnChangedMsg struct {
	Seat int `json:"seat"`
}

type gameEndedMsg struct {
	WinnerSeat   int    `json:"winner_seat"`
	WinnerUserID string `json:"winner_user_id"`
}

type gameErrorMsg struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func cardsToWire(cards []domain.Card) []wireCard {
	out := make([]wireCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, wireCard{Rank: c.Rank, Suit: c.Suit})
	}
	return out
}

func cardsFromWire(cards []wireCard) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, domain.Card{Rank: c.Rank, Suit: c.Suit})
	}
	return out
}

func marshalLabel(open int, phase domain.Phase) (string, error) {
	b, err := json.Marshal(matchLabel{Open: open, Game: "thirteen", Phase: string(phase)})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
