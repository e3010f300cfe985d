package bot

import (
	"fmt"
	"strings"
)

// Level selects a bot difficulty.
type Level int

const (
	// LevelSimple follows the deterministic lowest-card policy.
	LevelSimple Level = iota
	// LevelScored evaluates moves with phase-aware hand scoring.
	LevelScored
	// LevelCounting adds card counting on top of scored evaluation.
	LevelCounting
)

// ParseLevel converts a configuration string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "simple":
		return LevelSimple, nil
	case "scored":
		return LevelScored, nil
	case "counting":
		return LevelCounting, nil
	default:
		return LevelSimple, fmt.Errorf("unknown bot level: %q", s)
	}
}

// NewBrain creates a new AI brain for the specified level.
func NewBrain(level Level) (Brain, error) {
	switch level {
	case LevelSimple:
		return &SimpleBrain{}, nil
	case LevelScored:
		return &ScoredBrain{}, nil
	case LevelCounting:
		return &CountingBrain{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
