// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-ladders/internal/session"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the match ledger.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID           int64
	MatchID      string
	Winner       string
	WinnerSeat   int
	Players      []string // Names in seat order
	Turns        int
	DurationSecs int
	CreatedAt    time.Time // Defaults to now when saving
}

// PlayerWins is a leaderboard row.
type PlayerWins struct {
	Name      string
	Wins      int
	BestTurns int // Fewest rolls in a winning match
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			winner TEXT NOT NULL,
			winner_seat INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);

		CREATE TABLE IF NOT EXISTS match_players (
			match_id TEXT NOT NULL REFERENCES matches(match_id) ON DELETE CASCADE,
			seat INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (match_id, seat)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match and its roster.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := tx.Exec(
		`INSERT INTO matches (match_id, winner, winner_seat, turns, duration_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.MatchID, m.Winner, m.WinnerSeat, m.Turns, m.DurationSecs, createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	for seat, name := range m.Players {
		if _, err := tx.Exec(
			"INSERT INTO match_players (match_id, seat, name) VALUES (?, ?, ?)",
			m.MatchID, seat, name,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save player %q: %w", name, err)
		}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit match: %w", err)
	}
	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, winner, winner_seat, turns, duration_secs, created_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var m MatchRecord
		var createdAt any
		if err := rows.Scan(&m.ID, &m.MatchID, &m.Winner, &m.WinnerSeat, &m.Turns, &m.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.CreatedAt = parseTime(createdAt)
		records = append(records, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for i := range records {
		players, err := s.players(records[i].MatchID)
		if err != nil {
			return nil, err
		}
		records[i].Players = players
	}

	return records, nil
}

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	var m MatchRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, match_id, winner, winner_seat, turns, duration_secs, created_at
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	).Scan(&m.ID, &m.MatchID, &m.Winner, &m.WinnerSeat, &m.Turns, &m.DurationSecs, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	m.CreatedAt = parseTime(createdAt)

	players, err := s.players(matchID)
	if err != nil {
		return nil, err
	}
	m.Players = players

	return &m, nil
}

// players returns the roster of a match in seat order.
func (s *Store) players(matchID string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT name FROM match_players WHERE match_id = ? ORDER BY seat",
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan player: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return names, nil
}

// WinCounts returns the leaderboard: players ordered by wins, then by
// their fastest win.
func (s *Store) WinCounts(limit int) ([]PlayerWins, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT winner, COUNT(*) AS wins, MIN(turns)
		 FROM matches
		 GROUP BY winner
		 ORDER BY wins DESC, MIN(turns) ASC, winner ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query wins: %w", err)
	}
	defer rows.Close()

	var leaders []PlayerWins
	for rows.Next() {
		var w PlayerWins
		if err := rows.Scan(&w.Name, &w.Wins, &w.BestTurns); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		leaders = append(leaders, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return leaders, nil
}

// MatchCount returns the number of recorded matches.
func (s *Store) MatchCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count matches: %w", err)
	}
	return n, nil
}

// ClearMatches deletes every recorded match.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM match_players"); err != nil {
		return fmt.Errorf("storage: cannot clear players: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// SaveMatchResult implements session.ResultSaver.
func (s *Store) SaveMatchResult(r session.MatchResult) error {
	_, err := s.SaveMatch(MatchRecord{
		MatchID:      r.MatchID,
		Winner:       r.Winner,
		WinnerSeat:   r.WinnerSeat,
		Players:      r.Players,
		Turns:        r.Turns,
		DurationSecs: int(r.Duration / time.Second),
		CreatedAt:    r.FinishedAt,
	})
	return err
}

// Ensure Store implements ResultSaver
var _ session.ResultSaver = (*Store)(nil)

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
