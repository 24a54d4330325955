package board

import (
	"errors"
	"testing"
)

func TestResolveIdentity(t *testing.T) {
	table := Standard()

	for s := First; s <= Final; s++ {
		if _, isSnake := standardSnakes[s]; isSnake {
			continue
		}
		if _, isLadder := standardLadders[s]; isLadder {
			continue
		}
		if got := table.Resolve(s); got != s {
			t.Errorf("Resolve(%d) = %d, expected %d", s, got, s)
		}
		if kind := table.KindAt(s); kind != KindNone {
			t.Errorf("KindAt(%d) = %v, expected none", s, kind)
		}
	}
}

func TestResolveSnakes(t *testing.T) {
	table := Standard()

	tests := []struct {
		head, tail Square
	}{
		{93, 73},
		{95, 75},
		{98, 79},
		{87, 24},
		{64, 60},
		{62, 19},
		{54, 34},
		{17, 7},
	}

	for _, tc := range tests {
		got := table.Resolve(tc.head)
		if got != tc.tail {
			t.Errorf("Resolve(%d) = %d, expected %d", tc.head, got, tc.tail)
		}
		if got >= tc.head {
			t.Errorf("snake %d->%d does not go down", tc.head, got)
		}
		if kind := table.KindAt(tc.head); kind != KindSnake {
			t.Errorf("KindAt(%d) = %v, expected snake", tc.head, kind)
		}
	}
}

func TestResolveLadders(t *testing.T) {
	table := Standard()

	tests := []struct {
		foot, top Square
	}{
		{1, 38},
		{4, 14},
		{9, 31},
		{21, 42},
		{28, 84},
		{51, 67},
		{71, 91},
		{80, 100},
	}

	for _, tc := range tests {
		got := table.Resolve(tc.foot)
		if got != tc.top {
			t.Errorf("Resolve(%d) = %d, expected %d", tc.foot, got, tc.top)
		}
		if got <= tc.foot {
			t.Errorf("ladder %d->%d does not go up", tc.foot, got)
		}
		if kind := table.KindAt(tc.foot); kind != KindLadder {
			t.Errorf("KindAt(%d) = %v, expected ladder", tc.foot, kind)
		}
	}
}

func TestResolveDoesNotChain(t *testing.T) {
	// The ladder lands on a snake head; resolution must stop there.
	table, err := NewTable(
		map[Square]Square{50: 40},
		map[Square]Square{10: 50},
	)
	if err != nil {
		t.Fatalf("NewTable() failed: %v", err)
	}

	if got := table.Resolve(10); got != 50 {
		t.Errorf("Resolve(10) = %d, expected 50 (no chaining)", got)
	}
}

func TestStandardShape(t *testing.T) {
	table := Standard()

	if table.Len() != 16 {
		t.Errorf("Len() = %d, expected 16", table.Len())
	}

	snakes := table.Snakes()
	if len(snakes) != 8 {
		t.Fatalf("Snakes() returned %d, expected 8", len(snakes))
	}
	for i := 1; i < len(snakes); i++ {
		if snakes[i-1].From >= snakes[i].From {
			t.Errorf("Snakes() not sorted: %v", snakes)
		}
	}

	ladders := table.Ladders()
	if len(ladders) != 8 {
		t.Fatalf("Ladders() returned %d, expected 8", len(ladders))
	}
	for _, l := range ladders {
		if _, clash := standardSnakes[l.From]; clash {
			t.Errorf("square %d is both snake head and ladder foot", l.From)
		}
		if l.Kind() != KindLadder {
			t.Errorf("ladder %v has kind %v", l, l.Kind())
		}
	}

	// Mutating the returned slice must not affect the table.
	snakes[0].To = 99
	if table.Snakes()[0].To == 99 {
		t.Error("Snakes() exposes internal state")
	}
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		snakes  map[Square]Square
		ladders map[Square]Square
	}{
		{
			name:   "snake going up",
			snakes: map[Square]Square{10: 20},
		},
		{
			name:    "ladder going down",
			ladders: map[Square]Square{20: 10},
		},
		{
			name:   "self mapping",
			snakes: map[Square]Square{30: 30},
		},
		{
			name:    "overlapping keys",
			snakes:  map[Square]Square{40: 5},
			ladders: map[Square]Square{40: 60},
		},
		{
			name:    "off the board",
			ladders: map[Square]Square{95: 101},
		},
		{
			name:   "start square",
			snakes: map[Square]Square{5: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable(tc.snakes, tc.ladders)
			if err == nil {
				t.Fatal("NewTable() succeeded, expected error")
			}
			if !errors.Is(err, ErrInvalidTable) {
				t.Errorf("NewTable() error = %v, expected ErrInvalidTable", err)
			}
		})
	}
}

func TestSquareBounds(t *testing.T) {
	if !Start.Valid() || Start.OnBoard() {
		t.Error("Start should be valid but off the board")
	}
	if !Final.Valid() || !Final.OnBoard() {
		t.Error("Final should be valid and on the board")
	}
	if Square(101).Valid() || Square(-1).Valid() {
		t.Error("squares outside [0,100] should be invalid")
	}
}
