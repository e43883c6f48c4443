// Package storage persists finished match results to an on-disk SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished (or abandoned) match.
type MatchRecord struct {
	ID           int64
	ScoreA       int
	ScoreB       int
	Ticks        uint64
	Seed         int64
	DurationSecs int
	CreatedAt    time.Time
}

// Open creates or opens the match database at the given path, creating
// parent directories and running migrations as needed. A leading ~ is
// expanded to the home directory.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score_a INTEGER NOT NULL,
			score_b INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished match and returns the inserted row ID.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (score_a, score_b, ticks, seed, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ScoreA, rec.ScoreB, rec.Ticks, rec.Seed, rec.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score_a, score_b, ticks, seed, duration_secs, created_at
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
		var r MatchRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.ScoreA, &r.ScoreB, &r.Ticks, &r.Seed, &r.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Totals contains aggregate statistics over all recorded matches.
type Totals struct {
	Matches int
	PointsA int64
	PointsB int64
	Ticks   int64
}

// TotalStats aggregates every recorded match.
func (s *Store) TotalStats() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(score_a), 0), COALESCE(SUM(score_b), 0), COALESCE(SUM(ticks), 0)
		 FROM matches`,
	).Scan(&t.Matches, &t.PointsA, &t.PointsB, &t.Ticks)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot aggregate matches: %w", err)
	}
	return t, nil
}

// parseTime handles the driver returning DATETIME as either time.Time or
// its string form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
