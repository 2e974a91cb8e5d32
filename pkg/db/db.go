// Package db archives generated tracks in a local sqlite database so
// previous runs can be inspected or re-exported.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Register driver

	"trackgen/pkg/geo"
	"trackgen/pkg/track"
)

// DB wraps the sql.DB connection.
type DB struct {
	*sql.DB
}

// Run is an archived generation run.
type Run struct {
	ID            string
	Route         string
	MinSpacing    float64
	TargetCount   int
	Points        int
	TotalDistance float64
	CreatedAt     time.Time
}

// Init opens the database and runs migrations.
func Init(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	// Enable WAL mode and set busy timeout
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=30000;"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	d := &DB{db}
	// Enforce single connection to avoid SQLITE_BUSY errors
	db.SetMaxOpenConns(1)

	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return d, nil
}

func (d *DB) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS track_run (
			id TEXT PRIMARY KEY,
			route TEXT NOT NULL,
			min_spacing REAL,
			target_count INTEGER,
			points INTEGER,
			total_distance REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS track_point (
			run_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			lat REAL NOT NULL,
			lon REAL NOT NULL,
			PRIMARY KEY (run_id, seq)
		);`,
	}

	for _, q := range queries {
		if _, err := d.Exec(q); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}
	return nil
}

// SaveRun archives a generated track and returns the run ID.
func (d *DB) SaveRun(routeName string, minSpacing float64, targetCount int, t track.Track, stats track.Stats) (string, error) {
	id := uuid.NewString()

	tx, err := d.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO track_run (id, route, min_spacing, target_count, points, total_distance) VALUES (?, ?, ?, ?, ?, ?)`,
		id, routeName, minSpacing, targetCount, stats.Points, stats.TotalDistance)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO track_point (run_id, seq, lat, lon) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare point insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range t {
		if _, err := stmt.Exec(id, i, p.Lat, p.Lon); err != nil {
			return "", fmt.Errorf("failed to insert point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// LoadRun returns the track points of an archived run in order.
func (d *DB) LoadRun(id string) (track.Track, error) {
	rows, err := d.Query(`SELECT lat, lon FROM track_point WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query points: %w", err)
	}
	defer rows.Close()

	var t track.Track
	for rows.Next() {
		var p geo.Point
		if err := rows.Scan(&p.Lat, &p.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan point: %w", err)
		}
		t = append(t, p)
	}
	return t, rows.Err()
}

// Runs lists archived runs, newest first.
func (d *DB) Runs() ([]Run, error) {
	rows, err := d.Query(
		`SELECT id, route, min_spacing, target_count, points, total_distance, created_at
		 FROM track_run ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Route, &r.MinSpacing, &r.TargetCount, &r.Points, &r.TotalDistance, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
