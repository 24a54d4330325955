package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-ladders/internal/board"
)

// OutcomeKind describes what a single roll did.
type OutcomeKind int

const (
	OutcomeStayedAtStart OutcomeKind = iota
	OutcomeBlockedByOvershoot
	OutcomeMoved
	OutcomeSnake
	OutcomeLadder
	OutcomeWon
)

// String returns a short name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeStayedAtStart:
		return "stayed-at-start"
	case OutcomeBlockedByOvershoot:
		return "blocked-by-overshoot"
	case OutcomeMoved:
		return "moved"
	case OutcomeSnake:
		return "moved-via-snake"
	case OutcomeLadder:
		return "moved-via-ladder"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Outcome is an informative record of one accepted roll. It carries no
// state of its own; the Game has already been updated.
type Outcome struct {
	Kind   OutcomeKind
	Player int          // Index of the player who rolled
	Roll   int          // Dice value
	From   board.Square // Square before the roll
	Raw    board.Square // Square reached before snake/ladder resolution
	To     board.Square // Square after the roll
}

// Describe renders the outcome as a status line for the given player name.
func (o Outcome) Describe(name string) string {
	switch o.Kind {
	case OutcomeStayedAtStart:
		return fmt.Sprintf("%s rolled %d: needs a 1 or 6 to start", name, o.Roll)
	case OutcomeBlockedByOvershoot:
		return fmt.Sprintf("%s rolled %d: too far, stays on %d", name, o.Roll, o.From)
	case OutcomeSnake:
		return fmt.Sprintf("%s rolled %d: bitten by a snake on %d, slides to %d", name, o.Roll, o.Raw, o.To)
	case OutcomeLadder:
		return fmt.Sprintf("%s rolled %d: climbs the ladder on %d to %d", name, o.Roll, o.Raw, o.To)
	case OutcomeWon:
		return fmt.Sprintf("%s rolled %d and reached %d!", name, o.Roll, o.To)
	default:
		return fmt.Sprintf("%s rolled %d: moves %d -> %d", name, o.Roll, o.From, o.To)
	}
}
