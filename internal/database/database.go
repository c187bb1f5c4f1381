package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPath returns the path to the single shared database
func DBPath() string {
	return filepath.Join("data", "seastate.db")
}

// EnsureSchema creates the preset and run tables if they do not exist.
func EnsureSchema(dbPath string) error {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database to ensure schema: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS sea_presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL COLLATE NOCASE,
			description TEXT,
			wind_speed REAL NOT NULL,
			wind_fetch REAL NOT NULL,
			wind_direction REAL NOT NULL,
			field_length REAL NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_sea_presets_name ON sea_presets(name);
	`)
	if err != nil {
		return fmt.Errorf("creating sea_presets table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS sim_runs (
			id TEXT PRIMARY KEY,
			preset_name TEXT,
			wind_speed REAL NOT NULL,
			wind_fetch REAL NOT NULL,
			wind_direction REAL NOT NULL,
			seed INTEGER NOT NULL,
			significant_wave_height REAL NOT NULL,
			duration REAL NOT NULL,
			frames INTEGER NOT NULL,
			min_elevation REAL,
			max_elevation REAL,
			rms_elevation REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sim_runs_created ON sim_runs(created_at);
	`)
	if err != nil {
		return fmt.Errorf("creating sim_runs table: %w", err)
	}

	return nil
}

// Open ensures the schema and returns a handle tuned for a single writer.
func Open(dbPath string) (*sql.DB, error) {
	if err := EnsureSchema(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Set pragmas for performance
	_, _ = db.Exec("PRAGMA journal_mode=WAL")
	_, _ = db.Exec("PRAGMA synchronous=NORMAL")
	return db, nil
}
