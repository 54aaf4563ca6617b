// Package persistence provides SQLite-based storage for search runs and the
// schedules they produce, so parameter sweeps can be compared after the fact.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/statecraft/internal/search"
)

// DB wraps a SQLite connection for run persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		self_country TEXT NOT NULL,
		n INTEGER NOT NULL,
		depth INTEGER NOT NULL,
		beam INTEGER NOT NULL,
		gamma REAL NOT NULL,
		failure_cost REAL NOT NULL,
		k REAL NOT NULL,
		x0 REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS schedules (
		run_id TEXT NOT NULL REFERENCES runs(id),
		position INTEGER NOT NULL,
		eu REAL NOT NULL,
		actions_json TEXT NOT NULL,
		trace_json TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_schedules_run ON schedules(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Run records the parameters of one search invocation.
type Run struct {
	ID          string  `db:"id"`
	CreatedAt   string  `db:"created_at"`
	SelfCountry string  `db:"self_country"`
	N           int     `db:"n"`
	Depth       int     `db:"depth"`
	Beam        int     `db:"beam"`
	Gamma       float64 `db:"gamma"`
	FailureCost float64 `db:"failure_cost"`
	K           float64 `db:"k"`
	X0          float64 `db:"x0"`
}

// StoredSchedule is one ranked schedule of a run: the rendered action list
// and the per-step EU trace.
type StoredSchedule struct {
	RunID    string    `db:"run_id"`
	Position int       `db:"position"`
	EU       float64   `db:"eu"`
	Actions  []string  `db:"-"`
	Trace    []float64 `db:"-"`
}

// SaveRun writes the run and its ranked results in one transaction and
// returns the run id, generating one if unset.
func (db *DB) SaveRun(run Run, results []search.Result) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt == "" {
		run.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`
		INSERT INTO runs (id, created_at, self_country, n, depth, beam, gamma, failure_cost, k, x0)
		VALUES (:id, :created_at, :self_country, :n, :depth, :beam, :gamma, :failure_cost, :k, :x0)`,
		run)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for i, res := range results {
		actions, err := json.Marshal(res.Schedule.Strings())
		if err != nil {
			return "", fmt.Errorf("marshal actions: %w", err)
		}
		trace := res.Schedule.Trace
		if trace == nil {
			trace = []float64{}
		}
		traceJSON, err := json.Marshal(trace)
		if err != nil {
			return "", fmt.Errorf("marshal trace: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO schedules (run_id, position, eu, actions_json, trace_json)
			VALUES (?, ?, ?, ?, ?)`,
			run.ID, i+1, res.EU, string(actions), string(traceJSON))
		if err != nil {
			return "", fmt.Errorf("insert schedule %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return run.ID, nil
}

// Runs lists all recorded runs, most recent first.
func (db *DB) Runs() ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs, `SELECT * FROM runs ORDER BY created_at DESC, id`)
	return runs, err
}

// Schedules loads the ranked schedules of a run.
func (db *DB) Schedules(runID string) ([]StoredSchedule, error) {
	rows, err := db.conn.Queryx(`
		SELECT run_id, position, eu, actions_json, trace_json
		FROM schedules WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredSchedule
	for rows.Next() {
		var s StoredSchedule
		var actionsJSON, traceJSON string
		if err := rows.Scan(&s.RunID, &s.Position, &s.EU, &actionsJSON, &traceJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(actionsJSON), &s.Actions); err != nil {
			return nil, fmt.Errorf("unmarshal actions: %w", err)
		}
		if err := json.Unmarshal([]byte(traceJSON), &s.Trace); err != nil {
			return nil, fmt.Errorf("unmarshal trace: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
