// Package config provides YAML-based configuration loading for the game:
// the player roster, display pacing and the match ledger location.
// The board itself is fixed and not configurable.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all user-tunable settings.
type Config struct {
	Players []PlayerConfig `yaml:"players"`
	Display DisplayConfig  `yaml:"display"`
	Storage StorageConfig  `yaml:"storage"`
}

// PlayerConfig defines one seat at the table.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // see core.ColorByName
}

// DisplayConfig defines front-end pacing.
type DisplayConfig struct {
	TickRate   int `yaml:"tick_rate"`   // Animation ticks per second
	RollFrames int `yaml:"roll_frames"` // Ticks the dice tumble before showing the roll
}

// StorageConfig defines where finished matches are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if len(c.Players) < engine.MinPlayers {
		return fmt.Errorf("%w: need at least %d players, got %d", ErrInvalidConfig, engine.MinPlayers, len(c.Players))
	}

	seen := make(map[string]bool, len(c.Players))
	for i, p := range c.Players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return fmt.Errorf("%w: player %d has no name", ErrInvalidConfig, i+1)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate player name %q", ErrInvalidConfig, name)
		}
		seen[name] = true

		if _, err := ParseColor(p.Color); err != nil {
			return fmt.Errorf("%w: player %q: %v", ErrInvalidConfig, name, err)
		}
	}

	if c.Display.TickRate <= 0 {
		return fmt.Errorf("%w: display.tick_rate must be positive, got %d", ErrInvalidConfig, c.Display.TickRate)
	}
	if c.Display.RollFrames < 0 {
		return fmt.Errorf("%w: display.roll_frames must not be negative, got %d", ErrInvalidConfig, c.Display.RollFrames)
	}
	return nil
}

// WithPlayerCount returns a copy of c with exactly n players. Extra seats
// are filled with the engine's default names and colors; surplus seats
// are dropped.
func (c Config) WithPlayerCount(n int) Config {
	players := make([]PlayerConfig, 0, n)
	for i := 0; i < n; i++ {
		if i < len(c.Players) {
			players = append(players, c.Players[i])
			continue
		}
		def := engine.DefaultPlayer(i)
		players = append(players, PlayerConfig{Name: def.Name, Color: def.Color.String()})
	}
	c.Players = players
	return c
}

// PlayerSpecs converts the roster into engine player specs.
// Unknown colors fall back to the seat's default color.
func (c Config) PlayerSpecs() []engine.PlayerSpec {
	specs := make([]engine.PlayerSpec, len(c.Players))
	for i, p := range c.Players {
		spec := engine.DefaultPlayer(i)
		if name := strings.TrimSpace(p.Name); name != "" {
			spec.Name = name
		}
		if color, err := ParseColor(p.Color); err == nil && p.Color != "" {
			spec.Color = color
		}
		specs[i] = spec
	}
	return specs
}

// ParseColor maps a config color name to a core.Color.
// An empty name is accepted and means the seat's default color.
func ParseColor(name string) (core.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return core.ColorDefault, nil
	}
	c, ok := core.ColorByName(name)
	if !ok {
		return core.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
