package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
	"github.com/vovakirdan/tui-ladders/internal/session"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

var flagRolls string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match on the standard board.

Controls:
  Space/Enter - Roll the dice for the current player
  R           - Restart (after someone wins)
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Finished matches are recorded in the match ledger (see 'ladders scores').

Examples:
  ladders play
  ladders play --players 3
  ladders play --seed 42
  ladders play --rolls 6,3,5,1`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		exitOnError(play())
	},
}

func init() {
	playCmd.Flags().StringVar(&flagRolls, "rolls", "", "Replay these dice values in order, e.g. 6,3,5 (cycles)")
}

// diceSource returns the replay sequence from --rolls, or a seeded die.
func diceSource() (dice.Source, error) {
	if flagRolls == "" {
		return dice.NewRandom(flagSeed), nil
	}
	values, err := dice.ParseSequence(flagRolls)
	if err != nil {
		return nil, err
	}
	return dice.NewSequence(values...), nil
}

func play() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := diceSource()
	if err != nil {
		return err
	}

	// Logs would corrupt the alternate screen, so they go to a file or nowhere.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sessCfg := session.Config{
		Players: cfg.PlayerSpecs(),
		Dice:    source,
		Logger:  logger,
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match ledger: %v\n", err)
		logger.Warn("playing without match ledger", "error", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		sessCfg.Saver = store
	}

	driver, err := session.New(sessCfg)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Display.TickRate,
			Seed:     flagSeed,
		},
		RollFrames: cfg.Display.RollFrames,
	}

	if err := tui.Run(driver, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
