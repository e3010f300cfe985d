package internal

import (
	"testing"

	"github.com/joengyn/killer-13-sub000/internal/domain"
)

func gameWithHandSizes(sizes ...int) *domain.Game {
	deck := domain.NewDeck()
	game := &domain.Game{State: domain.NewGameState(len(sizes))}
	next := 0
	for seat, size := range sizes {
		hand := make(domain.Hand, 0, size)
		for i := 0; i < size; i++ {
			hand = append(hand, deck[next])
			next++
		}
		game.Players = append(game.Players, &domain.Player{Seat: seat, Hand: hand, Finished: size == 0})
	}
	return game
}

func TestDetectPhase(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		want  GamePhase
	}{
		{"full hands", []int{13, 13, 13, 13}, PhaseOpening},
		{"after a few tricks", []int{10, 11, 9, 12}, PhaseMid},
		{"someone is short", []int{10, 4, 9, 12}, PhaseEnd},
		{"someone finished", []int{10, 0, 9, 12}, PhaseEnd},
		{"everyone done", []int{0, 0, 0, 0}, PhaseEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPhase(gameWithHandSizes(tt.sizes...)); got != tt.want {
				t.Errorf("DetectPhase = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectPhaseNilGame(t *testing.T) {
	if got := DetectPhase(nil); got != PhaseMid {
		t.Errorf("DetectPhase(nil) = %v, want PhaseMid", got)
	}
}
