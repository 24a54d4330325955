package board

// Coord converts a square to its grid cell. Row 0 is the bottom row
// (squares 1-10); rows alternate direction so even rows run left to right
// and odd rows run right to left. The start square is off the board and
// reports onBoard=false.
func Coord(s Square) (row, col int, onBoard bool) {
	if !s.OnBoard() {
		return -1, -1, false
	}

	idx := int(s) - 1
	row = idx / Size
	col = idx % Size
	if row%2 == 1 {
		col = Size - 1 - col
	}
	return row, col, true
}

// At is the inverse of Coord: it returns the square drawn at (row, col).
func At(row, col int) Square {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return Start
	}
	if row%2 == 1 {
		col = Size - 1 - col
	}
	return Square(row*Size + col + 1)
}
