// Package archive records generation runs in a local SQLite database so the
// stats command and the server's runs endpoint can report history. It is a
// secondary index; the engine itself never reads it.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/RoyceNZ/lagom-map/pkg/engine"
)

// Run is one recorded generation.
type Run struct {
	ID             int64     `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Year           int       `json:"year"`
	Size           int       `json:"size"`
	Seed           float64   `json:"seed"`
	Tiles          int       `json:"tiles"`
	BlockClustered bool      `json:"block_clustered"`
	Warnings       int       `json:"warnings"`
	Deltas         string    `json:"deltas"`
	DurationMS     int64     `json:"duration_ms"`
}

// DB wraps the SQLite handle.
type DB struct {
	db *sql.DB
}

// Open creates or opens the archive at path.
func Open(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("empty archive path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at      TEXT NOT NULL,
	year            INTEGER NOT NULL,
	size            INTEGER NOT NULL,
	seed            REAL NOT NULL,
	tiles           INTEGER NOT NULL,
	block_clustered INTEGER NOT NULL,
	warnings        INTEGER NOT NULL,
	deltas          TEXT NOT NULL,
	duration_ms     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

// RecordRun stores the summary of one engine result.
func (d *DB) RecordRun(ctx context.Context, res *engine.Result) (int64, error) {
	deltas := map[string]int{}
	for _, row := range res.Counts {
		if row.Delta != 0 {
			deltas[string(row.ID)] = row.Delta
		}
	}
	db, err := json.Marshal(deltas)
	if err != nil {
		return 0, fmt.Errorf("encoding deltas: %w", err)
	}

	r, err := d.db.ExecContext(ctx, `
INSERT INTO runs (created_at, year, size, seed, tiles, block_clustered, warnings, deltas, duration_ms)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		res.Year,
		res.Grid.Size,
		res.Seed,
		res.Grid.Tiles(),
		res.Clustered != nil,
		len(res.Report.Warnings),
		string(db),
		res.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	return r.LastInsertId()
}

// RecentRuns returns up to limit runs, newest first.
func (d *DB) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.db.QueryContext(ctx, `
SELECT id, created_at, year, size, seed, tiles, block_clustered, warnings, deltas, duration_ms
FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &created, &r.Year, &r.Size, &r.Seed, &r.Tiles,
			&r.BlockClustered, &r.Warnings, &r.Deltas, &r.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close releases the database handle.
func (d *DB) Close() error { return d.db.Close() }
