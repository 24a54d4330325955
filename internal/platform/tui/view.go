package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/engine"
)

// Board layout constants
const (
	cellW    = 5 // Characters per square
	cellH    = 2 // Lines per square: number, then markers and tokens
	sidebarX = BoardWidth + 2
	minSideW = 26
	maxSideW = 40

	// BoardWidth and BoardHeight are the size of the boxed 10x10 grid.
	BoardWidth  = board.Size*cellW + 2
	BoardHeight = board.Size*cellH + 2

	// LayoutWidth and LayoutHeight are the smallest screen that fits the
	// whole board and sidebar.
	LayoutWidth  = sidebarX + minSideW
	LayoutHeight = BoardHeight
)

const tokenRune = '●'

// Frame is everything the view draws for one screen.
type Frame struct {
	Table   *board.Table
	Game    engine.Snapshot
	Face    int    // Dice face to show
	Rolling bool   // Dice is tumbling, outcome not revealed yet
	Status  string // Last outcome or error line
}

// squareOrigin returns the top-left screen cell of square s inside the board box.
func squareOrigin(s board.Square) (x, y int, ok bool) {
	row, col, onBoard := board.Coord(s)
	if !onBoard {
		return 0, 0, false
	}
	x = 1 + col*cellW
	y = 1 + (board.Size-1-row)*cellH
	return x, y, true
}

// RenderBoard draws the 10x10 serpentine grid with snakes, ladders and tokens.
func RenderBoard(s *core.Screen, t *board.Table, g engine.Snapshot) {
	s.DrawBox(core.NewRect(0, 0, BoardWidth, BoardHeight), core.ColorGray)

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			drawSquare(s, t, board.At(row, col))
		}
	}

	slots := make(map[board.Square]int)
	for _, p := range g.Players {
		x, y, ok := squareOrigin(p.Square)
		if !ok {
			continue
		}
		n := slots[p.Square]
		slots[p.Square] = n + 1

		// Tokens that do not fit in the square are not drawn.
		cell := core.NewRect(x, y, cellW, cellH)
		if cell.Contains(x+1+n, y+1) {
			s.SetColor(x+1+n, y+1, tokenRune, p.Color)
		}
	}
}

// drawSquare draws the number and snake or ladder marker of one square.
func drawSquare(s *core.Screen, t *board.Table, sq board.Square) {
	x, y, _ := squareOrigin(sq)

	numColor := core.ColorGray
	switch t.KindAt(sq) {
	case board.KindSnake:
		numColor = core.ColorRed
		s.SetColor(x, y+1, 'S', core.ColorBrightRed)
	case board.KindLadder:
		numColor = core.ColorGreen
		s.SetColor(x, y+1, 'L', core.ColorBrightGreen)
	}
	if sq == board.Final {
		numColor = core.ColorBrightYellow
	}
	s.DrawTextColor(x, y, fmt.Sprintf("%4d", sq), numColor)
}

// renderSidebar draws players, dice, last outcome and legend right of the board.
func renderSidebar(s *core.Screen, f Frame) {
	width := core.Clamp(s.Width()-sidebarX, minSideW, maxSideW)
	area := core.NewRect(sidebarX, 0, width, BoardHeight)
	y := 0

	s.DrawTextColor(sidebarX, y, "SNAKES & LADDERS", core.ColorBrightYellow)
	y += 2

	for i, p := range f.Game.Players {
		marker := "  "
		if !f.Game.Terminal() && i == f.Game.Turn {
			marker = "> "
		}
		s.DrawTextColor(sidebarX, y, marker, core.ColorWhite)
		s.SetColor(sidebarX+2, y, tokenRune, p.Color)
		s.DrawTextColor(sidebarX+4, y, p.Name, p.Color)

		where := "start"
		if p.Square != board.Start {
			where = fmt.Sprintf("%3d", p.Square)
		}
		s.DrawTextColor(sidebarX+width-len(where)-1, y, where, core.ColorWhite)
		y++
	}
	y++

	diceColor := core.ColorWhite
	if f.Rolling {
		diceColor = core.ColorGray
	}
	s.DrawBox(core.NewRect(sidebarX, y, 7, 5), diceColor)
	for i, line := range dice.Face(f.Face) {
		s.DrawTextColor(sidebarX+2, y+1+i, line, diceColor)
	}
	if f.Rolling {
		s.DrawTextColor(sidebarX+9, y+2, "rolling...", core.ColorGray)
	}
	y += 6

	if f.Game.Terminal() {
		winner := f.Game.Players[f.Game.Winner]
		s.DrawTextCentered(area, y, winner.Name+" WINS!", core.ColorBrightYellow)
		s.DrawTextCentered(area, y+1, "Press R to restart", core.ColorWhite)
		y += 3
	} else if !f.Rolling {
		current := f.Game.Players[f.Game.Turn]
		s.DrawTextColor(sidebarX, y, current.Name+" to roll", current.Color)
		y += 2
	} else {
		y += 2
	}

	if !f.Rolling {
		for _, line := range wrapText(f.Status, width-1) {
			s.DrawTextColor(sidebarX, y, line, core.ColorCyan)
			y++
		}
	}

	legendY := BoardHeight - 2
	if y < legendY {
		s.DrawTextColor(sidebarX, legendY, "S", core.ColorBrightRed)
		s.DrawTextColor(sidebarX+2, legendY, "snake head", core.ColorGray)
		s.DrawTextColor(sidebarX+14, legendY, "L", core.ColorBrightGreen)
		s.DrawTextColor(sidebarX+16, legendY, "ladder foot", core.ColorGray)
	}
}

// DrawFrame clears the screen and draws the board and sidebar.
func DrawFrame(s *core.Screen, f Frame) {
	s.Clear()
	RenderBoard(s, f.Table, f.Game)
	renderSidebar(s, f)
}
