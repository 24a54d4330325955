// Package session owns a running game on behalf of a front end. It turns
// the two player commands (roll, restart) into engine calls, keeps a short
// history for display and records finished matches.
package session

import "time"

// MatchResult is the outcome of a finished match.
type MatchResult struct {
	MatchID    string
	Winner     string
	WinnerSeat int
	Players    []string // Names in seat order
	Turns      int      // Accepted rolls, all players combined
	Duration   time.Duration
	FinishedAt time.Time
}

// ResultSaver persists finished matches. Saving is best effort: a failing
// saver never affects game state.
type ResultSaver interface {
	SaveMatchResult(result MatchResult) error
}
