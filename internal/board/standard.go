package board

var standardSnakes = map[Square]Square{
	93: 73,
	95: 75,
	98: 79,
	87: 24,
	64: 60,
	62: 19,
	54: 34,
	17: 7,
}

var standardLadders = map[Square]Square{
	1:  38,
	4:  14,
	9:  31,
	21: 42,
	28: 84,
	51: 67,
	71: 91,
	80: 100,
}

var standard = mustTable(standardSnakes, standardLadders)

// Standard returns the classic board every game is played on.
// The returned table is shared; callers must treat it as read-only.
func Standard() *Table {
	return standard
}

func mustTable(snakes, ladders map[Square]Square) *Table {
	t, err := NewTable(snakes, ladders)
	if err != nil {
		panic(err)
	}
	return t
}
