package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds the tunable match parameters.
type GameConfig struct {
	// HandSize is the number of cards dealt to each seat at match start.
	HandSize int `json:"hand_size"`
	// MinPlayers and MaxPlayers bound the party sizes clients may request.
	MinPlayers int `json:"min_players"`
	MaxPlayers int `json:"max_players"`
	// MatchWaitSeconds is how long the matchmaker waits for more humans
	// before filling the remaining seats with AI players.
	MatchWaitSeconds int `json:"match_wait_seconds"`
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

// GetGameConfig returns the global game configuration, or nil if never loaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetHandSize returns the configured hand size, defaulting to 5.
func GetHandSize() int {
	if cfg == nil || cfg.HandSize <= 0 {
		return 5
	}
	return cfg.HandSize
}

// GetPlayerRange returns the configured (min, max) party sizes, defaulting
// to 2 and 4.
func GetPlayerRange() (int, int) {
	min, max := 2, 4
	if cfg != nil && cfg.MinPlayers >= 2 {
		min = cfg.MinPlayers
	}
	if cfg != nil && cfg.MaxPlayers >= min {
		max = cfg.MaxPlayers
	}
	return min, max
}

// GetMatchWaitSeconds returns the matchmaking fill delay, defaulting to 5.
func GetMatchWaitSeconds() int {
	if cfg == nil || cfg.MatchWaitSeconds <= 0 {
		return 5
	}
	return cfg.MatchWaitSeconds
}
