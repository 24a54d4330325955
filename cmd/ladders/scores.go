package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
	flagMatch       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recent matches and the win leaderboard",
	Long: `Display finished matches from the match ledger.

Examples:
  ladders scores
  ladders scores --limit 25
  ladders scores --match 5f0c...   # details of one match
  ladders scores -i                # browse in the terminal UI
  ladders scores --clear           # forget every recorded match`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		exitOnError(scores(cmd.OutOrStdout()))
	},
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches and leaders to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the ledger interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
	scoresCmd.Flags().StringVar(&flagMatch, "match", "", "Show one match by its ID")
}

func scores(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening match ledger: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Fprintln(w, "Match ledger cleared.")
		return nil

	case flagMatch != "":
		return printMatch(w, store, flagMatch)

	case flagInteractive:
		width, height := 80, 24 // Defaults
		if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = tw
			height = th
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(w, store)
}

func printMatch(w io.Writer, store *storage.Store, matchID string) error {
	m, err := store.MatchByID(matchID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("no match with ID %q", matchID)
	}

	fmt.Fprintf(w, "Match %s\n", m.MatchID)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Finished: %s\n", m.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "  Winner:   %s (seat %d)\n", m.Winner, m.WinnerSeat+1)
	fmt.Fprintf(w, "  Rolls:    %d\n", m.Turns)
	fmt.Fprintf(w, "  Time:     %s\n", time.Duration(m.DurationSecs)*time.Second)
	fmt.Fprintln(w, "  Players:")
	for seat, name := range m.Players {
		fmt.Fprintf(w, "    %d. %s\n", seat+1, name)
	}
	return nil
}

func printScores(w io.Writer, store *storage.Store) error {
	total, err := store.MatchCount()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Match Ledger - %d finished matches\n", total)
	fmt.Fprintln(w)

	if total == 0 {
		fmt.Fprintln(w, "No matches recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'ladders play' and finish a match to get on the board!")
		return nil
	}

	leaders, err := store.WinCounts(flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Leaderboard")
	fmt.Fprintf(w, "  %-4s  %-20s  %-4s  %s\n", "Rank", "Player", "Wins", "Best")
	fmt.Fprintf(w, "  %-4s  %-20s  %-4s  %s\n", "----", "------", "----", "----")
	for i, l := range leaders {
		fmt.Fprintf(w, "  %-4d  %-20s  %-4d  %d\n", i+1, l.Name, l.Wins, l.BestTurns)
	}

	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent matches")
	fmt.Fprintf(w, "  %-16s  %-16s  %-5s  %-36s  %s\n", "Date", "Winner", "Rolls", "Match", "Players")
	fmt.Fprintf(w, "  %-16s  %-16s  %-5s  %-36s  %s\n", "----", "------", "-----", "-----", "-------")
	for _, m := range matches {
		dateStr := m.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-16s  %-16s  %-5d  %-36s  %s\n", dateStr, m.Winner, m.Turns, m.MatchID, strings.Join(m.Players, ", "))
	}
	return nil
}
