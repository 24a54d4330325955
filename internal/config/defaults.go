package config

import (
	_ "embed"
)

//go:embed defaults/ladders.yaml
var defaultLaddersYAML []byte

// Default returns the built-in configuration, used if the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		Players: []PlayerConfig{
			{Name: "Player 1", Color: "blue"},
			{Name: "Player 2", Color: "yellow"},
		},
		Display: DisplayConfig{
			TickRate:   30,
			RollFrames: 8,
		},
		Storage: StorageConfig{
			DBPath: "~/.ladders/matches.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLaddersYAML
}
