// Package storage provides a SQLite journal of finished play sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The journal records how a run went (ticks, overruns, bricks destroyed). It
// never stores game state, and a run cannot be resumed from it.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished session.
type RunRecord struct {
	ID              int64
	Backend         string
	Ticks           int
	Overruns        int
	BricksDestroyed int
	BricksTotal     int
	ErrorCount      int
	DurationMs      int64
	LagMs           int64
	SnapshotHash    uint64 // Hash of the final session snapshot
	CreatedAt       time.Time
}

// BackendStats aggregates the runs of one backend.
type BackendStats struct {
	Backend       string
	Runs          int
	TotalTicks    int64
	MaxDestroyed  int
	TotalOverruns int64
	LastRun       time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			backend TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			overruns INTEGER NOT NULL DEFAULT 0,
			bricks_destroyed INTEGER NOT NULL DEFAULT 0,
			bricks_total INTEGER NOT NULL DEFAULT 0,
			error_count INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			lag_ms INTEGER NOT NULL DEFAULT 0,
			snapshot_hash TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_backend ON runs(backend);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (backend, ticks, overruns, bricks_destroyed, bricks_total, error_count, duration_ms, lag_ms, snapshot_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Backend,
		r.Ticks,
		r.Overruns,
		r.BricksDestroyed,
		r.BricksTotal,
		r.ErrorCount,
		r.DurationMs,
		r.LagMs,
		formatHash(r.SnapshotHash),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, backend, ticks, overruns, bricks_destroyed, bricks_total,
		        error_count, duration_ms, lag_ms, snapshot_hash, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var hash string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Backend, &r.Ticks, &r.Overruns, &r.BricksDestroyed,
			&r.BricksTotal, &r.ErrorCount, &r.DurationMs, &r.LagMs, &hash, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.SnapshotHash, err = parseHash(hash); err != nil {
			return nil, fmt.Errorf("storage: bad snapshot hash %q: %w", hash, err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats retrieves aggregated statistics per backend.
func (s *Store) Stats() (map[string]*BackendStats, error) {
	rows, err := s.db.Query(
		`SELECT backend, COUNT(*), SUM(ticks), MAX(bricks_destroyed), SUM(overruns), MAX(created_at)
		 FROM runs
		 GROUP BY backend`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*BackendStats)
	for rows.Next() {
		var st BackendStats
		var lastRun any
		if err := rows.Scan(&st.Backend, &st.Runs, &st.TotalTicks, &st.MaxDestroyed, &st.TotalOverruns, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.Backend] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes the whole journal.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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

// Hashes are stored as hex text; SQLite integers are signed 64-bit.
func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

func parseHash(s string) (uint64, error) {
	return strconv.ParseUint(s, 16, 64)
}
