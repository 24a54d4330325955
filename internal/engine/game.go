// Package engine implements the Snakes & Ladders turn engine: the game state
// and the transition applied for each dice roll. It is pure and
// deterministic; dice values are supplied by the caller.
package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/dice"
)

// MinPlayers is the smallest supported roster.
const MinPlayers = 2

var (
	// ErrInvalidRoll is returned when a dice value outside [1,6] is submitted.
	ErrInvalidRoll = errors.New("engine: invalid roll")

	// ErrInvalidCall is returned when Advance is called on a finished game.
	ErrInvalidCall = errors.New("engine: game is already over")

	// ErrInvalidPlayerCount is returned when a game is created with fewer than two players.
	ErrInvalidPlayerCount = errors.New("engine: at least two players are required")
)

// defaultColors is the token palette used when players don't pick one.
var defaultColors = []core.Color{
	core.ColorBlue,
	core.ColorYellow,
	core.ColorRed,
	core.ColorGreen,
	core.ColorMagenta,
	core.ColorCyan,
}

// PlayerSpec describes a player's display attributes.
type PlayerSpec struct {
	Name  string
	Color core.Color
}

// Player is a participant and their token position.
type Player struct {
	Name   string
	Color  core.Color
	Square board.Square
}

// Game is the complete state of one match. It has a single owner which
// mutates it only through Advance and Reset.
type Game struct {
	Players  []Player
	Turn     int  // Index of the player whose turn it is
	LastRoll int  // Last accepted dice value, for display
	Terminal bool // Whether someone reached the final square
	Winner   int  // Winning player index, -1 while in progress
	Turns    int  // Number of accepted rolls
}

// New creates a game for the given players, all at the start square.
func New(players ...PlayerSpec) (*Game, error) {
	if len(players) < MinPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, len(players))
	}

	g := &Game{
		Players: make([]Player, len(players)),
	}
	for i, p := range players {
		g.Players[i] = Player{Name: p.Name, Color: p.Color}
	}
	g.Reset()
	return g, nil
}

// NewGame creates a game with playerCount default players
// named "Player 1", "Player 2", ...
func NewGame(playerCount int) (*Game, error) {
	specs := make([]PlayerSpec, 0, playerCount)
	for i := 0; i < playerCount; i++ {
		specs = append(specs, DefaultPlayer(i))
	}
	return New(specs...)
}

// DefaultPlayer returns the default name and color for seat i.
func DefaultPlayer(i int) PlayerSpec {
	return PlayerSpec{
		Name:  fmt.Sprintf("Player %d", i+1),
		Color: defaultColors[i%len(defaultColors)],
	}
}

// Reset returns the game to its initial state, keeping the roster.
// Calling it repeatedly is the same as calling it once.
func (g *Game) Reset() {
	for i := range g.Players {
		g.Players[i].Square = board.Start
	}
	g.Turn = 0
	g.LastRoll = dice.Min
	g.Terminal = false
	g.Winner = -1
	g.Turns = 0
}

// Current returns the player whose turn it is.
func (g *Game) Current() Player {
	return g.Players[g.Turn]
}

// Advance applies one dice roll for the current player. See Advance.
func (g *Game) Advance(t *board.Table, roll int) (Outcome, error) {
	return Advance(g, t, roll)
}

// Advance applies roll for the player whose turn it is and returns what
// happened. A rejected call leaves the game untouched.
//
// A player at the start square only enters the board on a 1 or a 6; any
// other roll is spent. A move past the final square is spent too. The
// landing square is resolved through t exactly once. Reaching the final
// square ends the game without passing the turn.
func Advance(g *Game, t *board.Table, roll int) (Outcome, error) {
	if !dice.ValidFace(roll) {
		return Outcome{}, fmt.Errorf("%w: %d is outside [%d,%d]", ErrInvalidRoll, roll, dice.Min, dice.Max)
	}
	if g.Terminal {
		return Outcome{}, fmt.Errorf("%w: reset before rolling again", ErrInvalidCall)
	}

	cur := g.Players[g.Turn].Square
	out := Outcome{
		Player: g.Turn,
		Roll:   roll,
		From:   cur,
	}

	g.LastRoll = roll
	g.Turns++

	out.Raw, out.To, out.Kind = move(t, cur, roll)
	g.Players[g.Turn].Square = out.To

	if out.To == board.Final {
		out.Kind = OutcomeWon
		g.Terminal = true
		g.Winner = g.Turn
		return out, nil
	}

	g.Turn = (g.Turn + 1) % len(g.Players)
	return out, nil
}

// move applies the start and overshoot rules and the table to a token on
// cur. raw is the square reached before the table is consulted.
func move(t *board.Table, cur board.Square, roll int) (raw, to board.Square, kind OutcomeKind) {
	if cur == board.Start && !releases(roll) {
		return cur, cur, OutcomeStayedAtStart
	}
	raw = cur + board.Square(roll)
	if raw > board.Final {
		return cur, cur, OutcomeBlockedByOvershoot
	}
	return raw, t.Resolve(raw), moveKind(t.KindAt(raw))
}

// releases reports whether roll lets a token leave the start square.
func releases(roll int) bool {
	return roll == 1 || roll == 6
}

func moveKind(k board.Kind) OutcomeKind {
	switch k {
	case board.KindSnake:
		return OutcomeSnake
	case board.KindLadder:
		return OutcomeLadder
	default:
		return OutcomeMoved
	}
}
