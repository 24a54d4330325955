package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
)

func TestSquareOrigin(t *testing.T) {
	tests := []struct {
		square board.Square
		x, y   int
	}{
		{1, 1, 19},
		{10, 46, 19},
		{11, 46, 17},
		{20, 1, 17},
		{91, 46, 1},
		{100, 1, 1},
	}

	for _, tt := range tests {
		x, y, ok := squareOrigin(tt.square)
		if !ok || x != tt.x || y != tt.y {
			t.Errorf("squareOrigin(%d) = (%d, %d, %v), expected (%d, %d, true)", tt.square, x, y, ok, tt.x, tt.y)
		}
	}

	if _, _, ok := squareOrigin(board.Start); ok {
		t.Error("squareOrigin(Start) should be off board")
	}
}

func TestRenderBoardNumbersAndMarkers(t *testing.T) {
	s := core.NewScreen(BoardWidth, BoardHeight)
	RenderBoard(s, board.Standard(), engine.Snapshot{})

	if got := string([]rune(s.Row(1))[1:6]); got != " 100 " {
		t.Errorf("square 100 label = %q, expected %q", got, " 100 ")
	}
	if got := strings.TrimSpace(string([]rune(s.Row(19))[1:6])); got != "1" {
		t.Errorf("square 1 label = %q, expected %q", got, "1")
	}

	// Square 17 is a snake head, square 1 a ladder foot.
	x, y, _ := squareOrigin(17)
	if cell := s.GetCell(x, y+1); cell.Rune != 'S' || cell.Color != core.ColorBrightRed {
		t.Errorf("snake marker = %q/%v, expected 'S'/%v", cell.Rune, cell.Color, core.ColorBrightRed)
	}
	x, y, _ = squareOrigin(1)
	if cell := s.GetCell(x, y+1); cell.Rune != 'L' || cell.Color != core.ColorBrightGreen {
		t.Errorf("ladder marker = %q/%v, expected 'L'/%v", cell.Rune, cell.Color, core.ColorBrightGreen)
	}
	x, y, _ = squareOrigin(50)
	if r := s.Get(x, y+1); r != ' ' {
		t.Errorf("plain square marker = %q, expected blank", r)
	}

	if s.Get(0, 0) != '┌' || s.Get(BoardWidth-1, BoardHeight-1) != '┘' {
		t.Error("board border not drawn")
	}
}

func TestRenderBoardTokens(t *testing.T) {
	s := core.NewScreen(BoardWidth, BoardHeight)
	snap := engine.Snapshot{Players: []engine.Player{
		{Name: "A", Color: core.ColorBlue, Square: 37},
		{Name: "B", Color: core.ColorYellow, Square: 37},
		{Name: "C", Color: core.ColorRed, Square: board.Start},
	}}
	RenderBoard(s, board.Standard(), snap)

	x, y, _ := squareOrigin(37)
	if cell := s.GetCell(x+1, y+1); cell.Rune != tokenRune || cell.Color != core.ColorBlue {
		t.Errorf("first token = %q/%v, expected %q/%v", cell.Rune, cell.Color, tokenRune, core.ColorBlue)
	}
	if cell := s.GetCell(x+2, y+1); cell.Rune != tokenRune || cell.Color != core.ColorYellow {
		t.Errorf("second token = %q/%v, expected %q/%v", cell.Rune, cell.Color, tokenRune, core.ColorYellow)
	}

	count := strings.Count(s.String(), string(tokenRune))
	if count != 2 {
		t.Errorf("tokens on board = %d, expected 2 (start is off board)", count)
	}
}

func TestDrawFrameSidebar(t *testing.T) {
	s := core.NewScreen(LayoutWidth, LayoutHeight)
	snap := engine.Snapshot{
		Players: []engine.Player{
			{Name: "Player 1", Color: core.ColorBlue, Square: 100},
			{Name: "Player 2", Color: core.ColorYellow, Square: 12},
		},
		Winner: 0,
		State:  engine.StateWon,
	}

	DrawFrame(s, Frame{Table: board.Standard(), Game: snap, Face: 3, Status: "Player 1 rolled 3"})
	out := s.String()

	for _, want := range []string{"SNAKES & LADDERS", "Player 1 WINS!", "Press R to restart", "Player 1 rolled 3", "o  "} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestDrawFrameHidesStatusWhileRolling(t *testing.T) {
	s := core.NewScreen(LayoutWidth, LayoutHeight)
	snap := engine.Snapshot{
		Players: []engine.Player{
			{Name: "Player 1", Color: core.ColorBlue},
			{Name: "Player 2", Color: core.ColorYellow},
		},
		Winner: -1,
		State:  engine.StatePlaying,
	}

	DrawFrame(s, Frame{Table: board.Standard(), Game: snap, Face: 5, Rolling: true, Status: "secret outcome"})
	out := s.String()

	if strings.Contains(out, "secret outcome") {
		t.Error("status shown while dice are rolling")
	}
	if !strings.Contains(out, "rolling...") {
		t.Error("rolling indicator missing")
	}
}

func TestRenderBoardDropsTokensThatDoNotFit(t *testing.T) {
	s := core.NewScreen(BoardWidth, BoardHeight)
	players := make([]engine.Player, 6)
	for i := range players {
		players[i] = engine.Player{Name: "P", Color: core.ColorCyan, Square: 50}
	}
	RenderBoard(s, board.Standard(), engine.Snapshot{Players: players})

	if got := strings.Count(s.String(), string(tokenRune)); got != cellW-1 {
		t.Errorf("tokens drawn = %d, expected %d", got, cellW-1)
	}
	_, y, _ := squareOrigin(50)
	if r := s.Get(BoardWidth-1, y+1); r != '│' {
		t.Errorf("border cell = %q, expected the board edge", r)
	}
}

func TestWinBannerCenteredInSidebar(t *testing.T) {
	s := core.NewScreen(LayoutWidth, LayoutHeight)
	snap := engine.Snapshot{
		Players: []engine.Player{
			{Name: "Ann", Color: core.ColorBlue, Square: 100},
			{Name: "Bob", Color: core.ColorYellow},
		},
		Winner: 0,
		State:  engine.StateWon,
	}
	DrawFrame(s, Frame{Table: board.Standard(), Game: snap, Face: 6})

	banner := "Ann WINS!"
	width := LayoutWidth - sidebarX
	want := sidebarX + (width-len(banner))/2

	for y := 0; y < s.Height(); y++ {
		row := []rune(s.Row(y))
		if got := strings.Index(string(row[sidebarX:]), banner); got >= 0 {
			if sidebarX+got != want {
				t.Errorf("banner starts at column %d, expected %d", sidebarX+got, want)
			}
			return
		}
	}
	t.Error("win banner not drawn")
}
