// Package sim runs the Pong simulation on an in-process relational engine.
// All match state lives in two tables of an in-memory SQLite database; the
// per-frame transition (AI, physics, collisions, scoring) and the field
// render are single declarative statements. Go supplies the random draws,
// frame pacing and terminal glue.
package sim

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// Match is one running game session. Each Match owns its own in-memory
// database, so multiple matches can coexist in a process. A single Match
// is not safe for concurrent use; the loop is single-threaded by design.
type Match struct {
	db    *sql.DB
	field FieldConfig
	ai    AIConfig
	rng   *rand.Rand
	tick  *sql.Stmt
}

// draws are the random inputs one tick consumes. They are rolled in Go and
// bound as parameters so a scripted source can replay a tick exactly.
type draws struct {
	aAim, aDef float64 // left side: trick-shot bucket and defense roll
	bAim, bDef float64 // right side
	serveY     int     // ball row if this tick ends in a score
	serveVY    int     // ball angle if this tick ends in a score
}

// NewMatch validates the configuration, opens a fresh in-memory database
// and seeds the opening state. The rng drives every random decision; pass
// a seeded source for deterministic replay, or nil for a time-based one.
func NewMatch(field FieldConfig, ai AIConfig, rng *rand.Rand) (*Match, error) {
	if err := field.Validate(); err != nil {
		return nil, err
	}
	if err := ai.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("sim: cannot open engine: %w", err)
	}
	// Every new connection to :memory: is a distinct database. Pin the
	// pool to one connection so params and state stay visible.
	db.SetMaxOpenConns(1)

	m := &Match{db: db, field: field, ai: ai, rng: rng}
	if err := m.setup(); err != nil {
		db.Close()
		return nil, err
	}

	stmt, err := db.Prepare(buildTickSQL(ai))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sim: cannot prepare tick statement: %w", err)
	}
	m.tick = stmt

	return m, nil
}

// setup creates the schema, loads the field parameters and inserts the
// randomized opening state.
func (m *Match) setup() error {
	if _, err := m.db.Exec(setupSQL); err != nil {
		return fmt.Errorf("sim: cannot create schema: %w", err)
	}

	_, err := m.db.Exec(
		"INSERT INTO params (w, h, paddle_h, paddle_speed, trigger_zone) VALUES (?, ?, ?, ?, ?)",
		m.field.Width, m.field.Height, m.field.PaddleH, m.field.PaddleSpeed, m.ai.TriggerZone,
	)
	if err != nil {
		return fmt.Errorf("sim: cannot load params: %w", err)
	}

	serveVX := 1
	if m.rng.Float64() < 0.5 {
		serveVX = -1
	}
	_, err = m.db.Exec(initStateSQL,
		sql.Named("serve_y", m.serveRow()),
		sql.Named("serve_vx", serveVX),
		sql.Named("serve_vy", m.serveAngle()),
	)
	if err != nil {
		return fmt.Errorf("sim: cannot seed state: %w", err)
	}
	return nil
}

// serveRow picks a ball row near the vertical center (center +/- 3).
func (m *Match) serveRow() int {
	return m.field.Height/2 + m.rng.Intn(7) - 3
}

// serveAngle picks a vertical speed uniformly from -2..+2.
func (m *Match) serveAngle() int {
	return m.rng.Intn(5) - 2
}

func (m *Match) roll() draws {
	return draws{
		aAim:    m.rng.Float64(),
		aDef:    m.rng.Float64(),
		bAim:    m.rng.Float64(),
		bDef:    m.rng.Float64(),
		serveY:  m.serveRow(),
		serveVY: m.serveAngle(),
	}
}

// Step advances the match by one tick and returns the resulting snapshot.
func (m *Match) Step() (Snapshot, error) {
	return m.step(m.roll())
}

// step runs the transition with explicit draws. Tests use it to script
// the AI and serve randomness.
func (m *Match) step(d draws) (Snapshot, error) {
	_, err := m.tick.Exec(
		sql.Named("a_aim", d.aAim),
		sql.Named("a_def", d.aDef),
		sql.Named("b_aim", d.bAim),
		sql.Named("b_def", d.bDef),
		sql.Named("serve_y", d.serveY),
		sql.Named("serve_vy", d.serveVY),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("sim: tick failed: %w", err)
	}
	return m.Snapshot()
}

// Snapshot reads the current state without advancing it.
func (m *Match) Snapshot() (Snapshot, error) {
	var s Snapshot
	err := m.db.QueryRow(snapshotSQL).Scan(
		&s.Tick, &s.PaddleAY, &s.PaddleBY,
		&s.BallX, &s.BallY, &s.VX, &s.VY,
		&s.ScoreA, &s.ScoreB,
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("sim: cannot read state: %w", err)
	}
	return s, nil
}

// Restore overwrites the match state from a snapshot, e.g. to replay a
// recorded position. The snapshot is not validated beyond what the next
// tick's clamping guarantees.
func (m *Match) Restore(s Snapshot) error {
	_, err := m.db.Exec(restoreSQL,
		sql.Named("tick", s.Tick),
		sql.Named("a_y", s.PaddleAY),
		sql.Named("b_y", s.PaddleBY),
		sql.Named("ball_x", s.BallX),
		sql.Named("ball_y", s.BallY),
		sql.Named("vx", s.VX),
		sql.Named("vy", s.VY),
		sql.Named("score_a", s.ScoreA),
		sql.Named("score_b", s.ScoreB),
	)
	if err != nil {
		return fmt.Errorf("sim: cannot restore state: %w", err)
	}
	return nil
}

// Frame renders the field as Height strings of Width cells each. It reads
// but never mutates the state, so repeated calls on the same tick yield
// identical output.
func (m *Match) Frame() ([]string, error) {
	rows, err := m.db.Query(frameSQL)
	if err != nil {
		return nil, fmt.Errorf("sim: render failed: %w", err)
	}
	defer rows.Close()

	lines := make([]string, 0, m.field.Height)
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("sim: cannot scan frame row: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sim: frame iteration error: %w", err)
	}
	if len(lines) != m.field.Height {
		return nil, fmt.Errorf("sim: frame has %d rows, want %d", len(lines), m.field.Height)
	}
	return lines, nil
}

// Field returns the immutable field configuration.
func (m *Match) Field() FieldConfig {
	return m.field
}

// Close releases the in-memory database. The match state is gone after
// this; nothing persists between sessions.
func (m *Match) Close() error {
	if m.tick != nil {
		m.tick.Close()
	}
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
