package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
)

var flagGrid bool

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the snakes and ladders",
	Long: `Print every snake and ladder on the board.

Examples:
  ladders board
  ladders board --grid`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().BoolVar(&flagGrid, "grid", false, "Also draw the board")
}

func runBoard(_ *cobra.Command, _ []string) {
	t := board.Standard()

	fmt.Println("Snakes")
	for _, tr := range t.Snakes() {
		fmt.Printf("  %3d -> %3d  (down %d)\n", tr.From, tr.To, tr.From-tr.To)
	}

	fmt.Println()
	fmt.Println("Ladders")
	for _, tr := range t.Ladders() {
		fmt.Printf("  %3d -> %3d  (up %d)\n", tr.From, tr.To, tr.To-tr.From)
	}

	if !flagGrid {
		return
	}

	s := core.NewScreen(tui.BoardWidth, tui.BoardHeight)
	tui.RenderBoard(s, t, engine.Snapshot{})
	fmt.Println()
	fmt.Println(s.String())
}
