package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-ladders/internal/core"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ladders.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	def := Default()
	if len(cfg.Players) != len(def.Players) {
		t.Fatalf("embedded players = %d, expected %d", len(cfg.Players), len(def.Players))
	}
	for i := range cfg.Players {
		if cfg.Players[i] != def.Players[i] {
			t.Errorf("player %d = %+v, expected %+v", i, cfg.Players[i], def.Players[i])
		}
	}
	if cfg.Display != def.Display {
		t.Errorf("display = %+v, expected %+v", cfg.Display, def.Display)
	}
	if cfg.Storage != def.Storage {
		t.Errorf("storage = %+v, expected %+v", cfg.Storage, def.Storage)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Players) != 2 || cfg.Players[0].Name != "Player 1" {
		t.Errorf("Load() players = %+v", cfg.Players)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".ladders", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	body := "players:\n  - name: Ann\n  - name: Bob\n  - name: Cy\n"
	if err := os.WriteFile(filepath.Join(dir, "ladders.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Players) != 3 || cfg.Players[2].Name != "Cy" {
		t.Errorf("Load() players = %+v", cfg.Players)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := writeConfig(t, "players:\n  - name: Ann\n    color: red\n  - name: Bob\n    color: green\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Players[0].Name != "Ann" || cfg.Players[1].Color != "green" {
		t.Errorf("players = %+v", cfg.Players)
	}
	// Unset sections keep their defaults
	if cfg.Display.TickRate != Default().Display.TickRate {
		t.Errorf("tick rate = %d, expected default", cfg.Display.TickRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := writeConfig(t, "players: [unterminated")
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	single := writeConfig(t, "players:\n  - name: Solo\n")
	if _, err := Load(single); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() with one player error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one player", func(c *Config) { c.Players = c.Players[:1] }},
		{"blank name", func(c *Config) { c.Players[0].Name = "  " }},
		{"duplicate name", func(c *Config) { c.Players[1].Name = c.Players[0].Name }},
		{"unknown color", func(c *Config) { c.Players[0].Color = "plaid" }},
		{"zero tick rate", func(c *Config) { c.Display.TickRate = 0 }},
		{"negative frames", func(c *Config) { c.Display.RollFrames = -1 }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestWithPlayerCount(t *testing.T) {
	cfg := Default().WithPlayerCount(4)
	if len(cfg.Players) != 4 {
		t.Fatalf("WithPlayerCount(4) gave %d players", len(cfg.Players))
	}
	if cfg.Players[3].Name != "Player 4" {
		t.Errorf("added seat name = %q", cfg.Players[3].Name)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after WithPlayerCount = %v", err)
	}

	trimmed := cfg.WithPlayerCount(2)
	if len(trimmed.Players) != 2 || trimmed.Players[1].Name != "Player 2" {
		t.Errorf("WithPlayerCount(2) = %+v", trimmed.Players)
	}
}

func TestPlayerSpecs(t *testing.T) {
	cfg := Default()
	cfg.Players[0].Color = "RED"
	cfg.Players[1].Color = ""

	specs := cfg.PlayerSpecs()
	if specs[0].Color != core.ColorRed {
		t.Errorf("seat 0 color = %v, expected red", specs[0].Color)
	}
	if specs[1].Color != core.ColorYellow {
		t.Errorf("seat 1 color = %v, expected the seat default", specs[1].Color)
	}
}
