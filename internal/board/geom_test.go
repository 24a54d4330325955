package board

import "testing"

func TestCoord(t *testing.T) {
	tests := []struct {
		square   Square
		row, col int
	}{
		{1, 0, 0},
		{10, 0, 9},
		{11, 1, 9},
		{20, 1, 0},
		{21, 2, 0},
		{55, 5, 5},
		{91, 9, 9},
		{100, 9, 0},
	}

	for _, tc := range tests {
		row, col, ok := Coord(tc.square)
		if !ok {
			t.Errorf("Coord(%d) reported off-board", tc.square)
			continue
		}
		if row != tc.row || col != tc.col {
			t.Errorf("Coord(%d) = (%d, %d), expected (%d, %d)", tc.square, row, col, tc.row, tc.col)
		}
	}
}

func TestCoordStartIsOffBoard(t *testing.T) {
	if _, _, ok := Coord(Start); ok {
		t.Error("Coord(Start) should be off the board")
	}
}

func TestAtRoundTrip(t *testing.T) {
	for s := First; s <= Final; s++ {
		row, col, _ := Coord(s)
		if got := At(row, col); got != s {
			t.Errorf("At(Coord(%d)) = %d", s, got)
		}
	}
}
