// ladders is a terminal Snakes & Ladders game for two or more players
// sharing one keyboard.
//
// Usage:
//
//	ladders play             - Play a match in the terminal
//	ladders sim              - Play seeded matches headless and print statistics
//	ladders board            - Print the snakes and ladders
//	ladders scores           - Show recent matches and the win leaderboard
//	ladders config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--db <path>        - Match ledger database (default from config)
//	--seed <value>     - Dice RNG seed for reproducible matches
//	--players <n>      - Number of players (default from config)
//	--log-file <path>  - Write logs to a file
//	--debug            - Log every turn
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagSeed    int64
	flagPlayers int
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladders",
	Short: "Snakes & Ladders in your terminal",
	Long: `Snakes & Ladders for two or more players on one keyboard.

Players take turns rolling a die. A token enters the board only on a 1 or a
6, snakes slide it down, ladders carry it up, and the first token to land
exactly on 100 wins.

Available commands:
  play     - Play a match
  sim      - Simulate matches without a terminal UI
  board    - Show the snakes and ladders
  scores   - View finished matches
  config   - Print the effective configuration

Examples:
  ladders play
  ladders play --players 4
  ladders sim --games 1000 --seed 42
  ladders scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match ledger database (default: from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Dice RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagPlayers, "players", 0, "Number of players (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every turn")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// exitOnError reports err and exits with status 1. Commands return their
// errors here after their deferred cleanup has run.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPlayers != 0 {
		cfg = cfg.WithPlayerCount(flagPlayers)
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}

// newLogger creates the command logger. fallback is used when no
// --log-file is given. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ladders",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
