package app

import (
	"math/rand"
	"testing"

	"github.com/joengyn/killer-13-sub000/internal/bot"
)

// Bots of every level must be able to finish a match from any deal without
// the session ever rejecting a move into a dead end.
func TestBotsFinishAMatch(t *testing.T) {
	levels := []bot.Level{bot.LevelSimple, bot.LevelScored, bot.LevelCounting}

	for seed := int64(0); seed < 10; seed++ {
		s, _, err := NewSession(4, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}

		brains := make([]bot.Brain, 4)
		for seat := range brains {
			brain, err := bot.NewBrain(levels[seat%len(levels)])
			if err != nil {
				t.Fatal(err)
			}
			brains[seat] = brain
		}

		game := s.Game()
		for turns := 0; !game.State.GameOver(); turns++ {
			if turns > 500 {
				t.Fatalf("seed %d: no winner after %d turns", seed, turns)
			}
			seat := game.State.CurrentPlayer()
			if _, err := s.Autoplay(brains[seat]); err != nil {
				t.Fatalf("seed %d: autoplay seat %d: %v", seed, seat, err)
			}
		}

		winner := game.State.Winner()
		if len(game.PlayerAt(winner).Hand) != 0 {
			t.Fatalf("seed %d: winner %d still holds cards", seed, winner)
		}
	}
}
