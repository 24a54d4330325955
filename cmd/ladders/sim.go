package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/session"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

var (
	flagGames    int
	flagMaxTurns int
	flagRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate matches without a terminal UI",
	Long: `Play matches with computer-rolled dice and print how they went.

With a fixed --seed the same matches are played every time. With --record
every finished match is added to the match ledger.

Examples:
  ladders sim
  ladders sim --games 10000 --seed 7
  ladders sim --players 4 --games 500
  ladders sim --games 20 --record --debug`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		exitOnError(simulate(cmd.OutOrStdout()))
	},
}

func init() {
	simCmd.Flags().IntVar(&flagGames, "games", 100, "Number of matches to play")
	simCmd.Flags().IntVar(&flagMaxTurns, "max-turns", 10000, "Give up on a match after this many rolls")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save finished matches to the match ledger")
}

// simStats aggregates simulated matches.
type simStats struct {
	wins     []int
	games    int
	stalled  int
	turns    int
	shortest int
	longest  int
}

func (s *simStats) add(winner, turns int) {
	s.wins[winner]++
	s.games++
	s.turns += turns
	if s.shortest == 0 || turns < s.shortest {
		s.shortest = turns
	}
	if turns > s.longest {
		s.longest = turns
	}
}

func (s *simStats) average() float64 {
	if s.games == 0 {
		return 0
	}
	return float64(s.turns) / float64(s.games)
}

func simulate(w io.Writer) error {
	if flagGames <= 0 {
		return errors.New("--games must be positive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sessCfg := session.Config{
		Players: cfg.PlayerSpecs(),
		Dice:    dice.NewRandom(seed),
		Logger:  logger,
	}

	if flagRecord {
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("opening match ledger: %w", err)
		}
		defer store.Close()
		sessCfg.Saver = store
	}

	driver, err := session.New(sessCfg)
	if err != nil {
		return err
	}

	logger.Info("simulating", "games", flagGames, "players", len(sessCfg.Players), "seed", seed)
	if !flagDebug {
		// One line per match is only useful when debugging.
		logger.SetLevel(log.WarnLevel)
	}

	stats := simStats{wins: make([]int, len(sessCfg.Players))}
	for i := 0; i < flagGames; i++ {
		if i > 0 {
			driver.SubmitReset()
		}

		out, err := driver.PlayToEnd(flagMaxTurns)
		if errors.Is(err, session.ErrTurnLimit) {
			logger.Warn("match stalled", "match", driver.MatchID(), "error", err)
			stats.stalled++
			continue
		}
		if err != nil {
			return err
		}

		stats.add(out.Player, driver.Game().Turns)
	}

	printSimStats(w, sessCfg.Players, &stats)
	return nil
}

func printSimStats(w io.Writer, players []engine.PlayerSpec, stats *simStats) {
	fmt.Fprintf(w, "Simulated %d matches\n", stats.games+stats.stalled)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-20s  %6s  %6s\n", "Player", "Wins", "Share")
	fmt.Fprintf(w, "  %-20s  %6s  %6s\n", "------", "----", "-----")
	for i, p := range players {
		share := 0.0
		if stats.games > 0 {
			share = 100 * float64(stats.wins[i]) / float64(stats.games)
		}
		fmt.Fprintf(w, "  %-20s  %6d  %5.1f%%\n", p.Name, stats.wins[i], share)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Rolls per match: avg %.1f, shortest %d, longest %d\n", stats.average(), stats.shortest, stats.longest)
	if stats.stalled > 0 {
		fmt.Fprintf(w, "Stalled matches (no winner within --max-turns): %d\n", stats.stalled)
	}
}
