package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type GameConfig struct {
	// DefaultBotLevel selects the strategy bots use: simple, scored or counting.
	DefaultBotLevel     string `json:"default_bot_level"`
	TurnDurationSeconds int    `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding a bot to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotMinDelayMs and BotMaxDelayMs bound the artificial thinking pause before a bot move.
	BotMinDelayMs int `json:"bot_min_delay_ms"`
	BotMaxDelayMs int `json:"bot_max_delay_ms"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or nil before loading.
func GetGameConfig() *GameConfig {
	return cfg
}

// BotLevel returns the configured bot level, defaulting to "simple".
func BotLevel() string {
	if cfg == nil || cfg.DefaultBotLevel == "" {
		return "simple"
	}
	return cfg.DefaultBotLevel
}

// TurnDuration returns the per-turn countdown in seconds, with a safe default.
func TurnDuration() int {
	if cfg == nil || cfg.TurnDurationSeconds <= 0 {
		return 20
	}
	return cfg.TurnDurationSeconds
}
