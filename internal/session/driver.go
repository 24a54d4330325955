package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/engine"
)

// DefaultHistorySize is how many outcomes the driver keeps for display.
const DefaultHistorySize = 8

// ErrTurnLimit is returned by PlayToEnd when no one wins in time.
var ErrTurnLimit = errors.New("session: turn limit reached")

// Config configures a Driver. Only Players is required.
type Config struct {
	Players     []engine.PlayerSpec
	Table       *board.Table // Defaults to board.Standard()
	Dice        dice.Source  // Defaults to a time-seeded die
	Logger      *log.Logger  // Defaults to a discarding logger
	Saver       ResultSaver  // Optional
	HistorySize int          // Defaults to DefaultHistorySize
	Clock       func() time.Time
}

// Driver is the single owner of a Game. It is not safe for concurrent use;
// the front end calls it from its update loop.
type Driver struct {
	game    *engine.Game
	table   *board.Table
	dice    dice.Source
	logger  *log.Logger
	saver   ResultSaver
	clock   func() time.Time
	history []engine.Outcome
	maxHist int

	matchID string
	started time.Time
	saved   bool
}

// New creates a driver with a fresh game.
func New(cfg Config) (*Driver, error) {
	game, err := engine.New(cfg.Players...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	d := &Driver{
		game:    game,
		table:   cfg.Table,
		dice:    cfg.Dice,
		logger:  cfg.Logger,
		saver:   cfg.Saver,
		clock:   cfg.Clock,
		maxHist: cfg.HistorySize,
	}
	if d.table == nil {
		d.table = board.Standard()
	}
	if d.dice == nil {
		d.dice = dice.NewRandom(0)
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}
	if d.clock == nil {
		d.clock = time.Now
	}
	if d.maxHist <= 0 {
		d.maxHist = DefaultHistorySize
	}

	d.startMatch()
	return d, nil
}

// SubmitRoll rolls the die for the current player and applies it.
// On a finished game it returns engine.ErrInvalidCall without rolling.
func (d *Driver) SubmitRoll() (engine.Outcome, error) {
	if d.game.Terminal {
		return engine.Outcome{}, fmt.Errorf("session: %w", engine.ErrInvalidCall)
	}
	return d.Apply(d.dice.Roll())
}

// Apply applies a known dice value for the current player.
func (d *Driver) Apply(roll int) (engine.Outcome, error) {
	name := d.game.Current().Name

	out, err := d.game.Advance(d.table, roll)
	if err != nil {
		d.logger.Warn("roll rejected", "match", d.matchID, "player", name, "roll", roll, "error", err)
		return out, fmt.Errorf("session: %w", err)
	}

	d.record(out)
	d.logger.Debug("turn",
		"match", d.matchID,
		"player", name,
		"roll", out.Roll,
		"outcome", out.Kind,
		"from", int(out.From),
		"to", int(out.To),
	)

	if out.Kind == engine.OutcomeWon {
		d.finish(name)
	}
	return out, nil
}

// SubmitReset starts a new match with the same players.
func (d *Driver) SubmitReset() {
	d.logger.Debug("reset", "match", d.matchID, "turns", d.game.Turns)
	d.game.Reset()
	d.history = d.history[:0]
	d.startMatch()
}

// PlayToEnd keeps rolling until someone wins or maxTurns rolls were made.
// It returns the winning outcome.
func (d *Driver) PlayToEnd(maxTurns int) (engine.Outcome, error) {
	for i := 0; i < maxTurns; i++ {
		out, err := d.SubmitRoll()
		if err != nil {
			return out, err
		}
		if out.Kind == engine.OutcomeWon {
			return out, nil
		}
	}
	return engine.Outcome{}, fmt.Errorf("%w: no winner after %d rolls", ErrTurnLimit, maxTurns)
}

// Game returns a snapshot of the current game.
func (d *Driver) Game() engine.Snapshot {
	return d.game.Snapshot()
}

// Table returns the board the game is played on.
func (d *Driver) Table() *board.Table {
	return d.table
}

// History returns the most recent outcomes, oldest first.
func (d *Driver) History() []engine.Outcome {
	return append([]engine.Outcome(nil), d.history...)
}

// Last returns the most recent outcome, if any.
func (d *Driver) Last() (engine.Outcome, bool) {
	if len(d.history) == 0 {
		return engine.Outcome{}, false
	}
	return d.history[len(d.history)-1], true
}

// MatchID returns the identifier of the current match.
func (d *Driver) MatchID() string {
	return d.matchID
}

func (d *Driver) startMatch() {
	d.matchID = uuid.NewString()
	d.started = d.clock()
	d.saved = false
}

func (d *Driver) record(out engine.Outcome) {
	if len(d.history) == d.maxHist {
		copy(d.history, d.history[1:])
		d.history = d.history[:len(d.history)-1]
	}
	d.history = append(d.history, out)
}

// finish logs the win and saves the result once per match.
func (d *Driver) finish(winner string) {
	snap := d.game.Snapshot()
	now := d.clock()

	d.logger.Info("match won", "match", d.matchID, "winner", winner, "turns", snap.Turns)

	if d.saver == nil || d.saved {
		return
	}
	d.saved = true

	players := make([]string, len(snap.Players))
	for i, p := range snap.Players {
		players[i] = p.Name
	}

	result := MatchResult{
		MatchID:    d.matchID,
		Winner:     winner,
		WinnerSeat: snap.Winner,
		Players:    players,
		Turns:      snap.Turns,
		Duration:   now.Sub(d.started),
		FinishedAt: now,
	}
	if err := d.saver.SaveMatchResult(result); err != nil {
		d.logger.Warn("could not save match result", "match", d.matchID, "error", err)
	}
}
