package database

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestEnsureSchema_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// 1. Initialize schema
	if err := EnsureSchema(dbPath); err != nil {
		t.Fatalf("First EnsureSchema failed: %v", err)
	}

	// 2. Insert records
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	_, err = db.Exec(`INSERT INTO sea_presets (name, wind_speed, wind_fetch, wind_direction, seed) VALUES ('Test Preset', 10, 1000, 0, 1)`)
	if err == nil {
		_, err = db.Exec(`INSERT INTO sim_runs (id, wind_speed, wind_fetch, wind_direction, seed, significant_wave_height, duration, frames) VALUES ('run-1', 10, 1000, 0, 1, 0.16, 10, 1000)`)
	}
	db.Close()
	if err != nil {
		t.Fatalf("Failed to insert record: %v", err)
	}

	// 3. Initialize schema again (should not drop tables)
	if err := EnsureSchema(dbPath); err != nil {
		t.Fatalf("Second EnsureSchema failed: %v", err)
	}

	// 4. Verify records exist
	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	defer db.Close()

	for _, q := range []string{
		"SELECT COUNT(*) FROM sea_presets WHERE name = 'Test Preset'",
		"SELECT COUNT(*) FROM sim_runs WHERE id = 'run-1'",
	} {
		var count int
		if err := db.QueryRow(q).Scan(&count); err != nil {
			t.Fatalf("Failed to query record: %v", err)
		}
		if count != 1 {
			t.Errorf("%s: expected 1 record, got %d. Data was likely lost due to table drop.", q, count)
		}
	}
}

func TestEnsureSchema_UniquePresetName(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := EnsureSchema(dbPath); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	defer db.Close()

	insert := `INSERT INTO sea_presets (name, wind_speed, wind_fetch, wind_direction, seed) VALUES ('Dup', 10, 1000, 0, 1)`
	if _, err := db.Exec(insert); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := db.Exec(insert); err == nil {
		t.Error("duplicate preset name was accepted")
	}
	upper := `INSERT INTO sea_presets (name, wind_speed, wind_fetch, wind_direction, seed) VALUES ('DUP', 10, 1000, 0, 1)`
	if _, err := db.Exec(upper); err == nil {
		t.Error("preset name differing only in case was accepted")
	}
}
