package engine

import "github.com/vovakirdan/tui-ladders/internal/board"

// GameStateType represents the lifecycle state of a game.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StateWon     GameStateType = "won"
)

// Snapshot is a copy of the game state safe to hand to renderers.
type Snapshot struct {
	Players  []Player
	Turn     int
	LastRoll int
	Winner   int
	Turns    int
	State    GameStateType
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.Terminal {
		state = StateWon
	}

	return Snapshot{
		Players:  append([]Player(nil), g.Players...),
		Turn:     g.Turn,
		LastRoll: g.LastRoll,
		Winner:   g.Winner,
		Turns:    g.Turns,
		State:    state,
	}
}

// Squares returns each player's square in seat order.
func (s Snapshot) Squares() []board.Square {
	squares := make([]board.Square, len(s.Players))
	for i, p := range s.Players {
		squares[i] = p.Square
	}
	return squares
}

// Terminal reports whether the snapshot is of a finished game.
func (s Snapshot) Terminal() bool {
	return s.State == StateWon
}
