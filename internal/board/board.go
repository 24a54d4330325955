// Package board defines the fixed 100-square Snakes & Ladders board:
// squares, the snake/ladder transition table and the serpentine geometry
// used by renderers.
package board

import (
	"errors"
	"fmt"
	"sort"
)

// Square is a position on the board. 0 is the off-board start,
// 1..100 are board squares and 100 is the winning square.
type Square int

const (
	Start Square = 0   // Off-board start position
	First Square = 1   // First board square
	Final Square = 100 // Winning square

	// Size is the number of squares per row (and rows per board).
	Size = 10
)

// Valid reports whether s is within [Start, Final].
func (s Square) Valid() bool {
	return s >= Start && s <= Final
}

// OnBoard reports whether s is a real board square (not the start).
func (s Square) OnBoard() bool {
	return s >= First && s <= Final
}

// Kind classifies a transition.
type Kind int

const (
	KindNone Kind = iota
	KindSnake
	KindLadder
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSnake:
		return "snake"
	case KindLadder:
		return "ladder"
	default:
		return "unknown"
	}
}

// Transition is a single snake or ladder.
type Transition struct {
	From Square
	To   Square
}

// Kind returns KindSnake for downward transitions and KindLadder for upward ones.
func (t Transition) Kind() Kind {
	switch {
	case t.To < t.From:
		return KindSnake
	case t.To > t.From:
		return KindLadder
	default:
		return KindNone
	}
}

// ErrInvalidTable is returned when snake/ladder maps break the table invariants.
var ErrInvalidTable = errors.New("board: invalid transition table")

// Table maps landing squares to their destinations. It is immutable after
// construction and safe for concurrent readers.
type Table struct {
	dest    map[Square]Square
	snakes  []Transition
	ladders []Transition
}

// NewTable builds a table from disjoint snake and ladder maps.
// Snakes must go strictly down, ladders strictly up, and every square
// must lie in [1, 100].
func NewTable(snakes, ladders map[Square]Square) (*Table, error) {
	t := &Table{
		dest: make(map[Square]Square, len(snakes)+len(ladders)),
	}

	for from, to := range snakes {
		if !from.OnBoard() || !to.OnBoard() {
			return nil, fmt.Errorf("%w: snake %d->%d is off the board", ErrInvalidTable, from, to)
		}
		if to >= from {
			return nil, fmt.Errorf("%w: snake %d->%d does not go down", ErrInvalidTable, from, to)
		}
		t.dest[from] = to
		t.snakes = append(t.snakes, Transition{From: from, To: to})
	}

	for from, to := range ladders {
		if !from.OnBoard() || !to.OnBoard() {
			return nil, fmt.Errorf("%w: ladder %d->%d is off the board", ErrInvalidTable, from, to)
		}
		if to <= from {
			return nil, fmt.Errorf("%w: ladder %d->%d does not go up", ErrInvalidTable, from, to)
		}
		if _, clash := t.dest[from]; clash {
			return nil, fmt.Errorf("%w: square %d is both a snake head and a ladder foot", ErrInvalidTable, from)
		}
		t.dest[from] = to
		t.ladders = append(t.ladders, Transition{From: from, To: to})
	}

	sortTransitions(t.snakes)
	sortTransitions(t.ladders)
	return t, nil
}

func sortTransitions(ts []Transition) {
	sort.Slice(ts, func(i, j int) bool {
		return ts[i].From < ts[j].From
	})
}

// Resolve returns where a token landing on s ends up. Squares without a
// snake or ladder resolve to themselves. Resolution is applied once; a
// destination that is itself a transition source is not followed.
func (t *Table) Resolve(s Square) Square {
	if to, ok := t.dest[s]; ok {
		return to
	}
	return s
}

// KindAt reports whether s is a snake head, a ladder foot, or neither.
func (t *Table) KindAt(s Square) Kind {
	to, ok := t.dest[s]
	if !ok {
		return KindNone
	}
	return Transition{From: s, To: to}.Kind()
}

// Snakes returns the snakes ordered by head square.
func (t *Table) Snakes() []Transition {
	return append([]Transition(nil), t.snakes...)
}

// Ladders returns the ladders ordered by foot square.
func (t *Table) Ladders() []Transition {
	return append([]Transition(nil), t.ladders...)
}

// Len returns the total number of transitions.
func (t *Table) Len() int {
	return len(t.dest)
}
