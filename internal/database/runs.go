package database

import (
	"fmt"
	"time"

	"github.com/ngmaloney/seastate/internal/models"
)

// RunRepository stores the log of headless simulation runs
type RunRepository struct {
	dbPath string
}

// NewRunRepository creates a run log backed by the database at dbPath
func NewRunRepository(dbPath string) *RunRepository {
	return &RunRepository{dbPath: dbPath}
}

// SaveRun records a finished run. The run must already carry its ID.
func (r *RunRepository) SaveRun(run *models.Run) error {
	if run.ID == "" {
		return fmt.Errorf("saving run: missing id")
	}
	db, err := Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err = db.Exec(`
		INSERT INTO sim_runs (id, preset_name, wind_speed, wind_fetch, wind_direction, seed,
			significant_wave_height, duration, frames, min_elevation, max_elevation, rms_elevation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.PresetName,
		run.WindSpeed,
		run.WindFetch,
		run.WindDirection,
		run.Seed,
		run.SignificantWaveHeight,
		run.Duration,
		run.Frames,
		run.MinElevation,
		run.MaxElevation,
		run.RMSElevation,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first
func (r *RunRepository) ListRuns(limit int) ([]models.Run, error) {
	db, err := Open(r.dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, COALESCE(preset_name, ''), wind_speed, wind_fetch, wind_direction, seed,
			significant_wave_height, duration, frames,
			COALESCE(min_elevation, 0), COALESCE(max_elevation, 0), COALESCE(rms_elevation, 0), created_at
		FROM sim_runs
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var run models.Run
		if err := rows.Scan(&run.ID, &run.PresetName, &run.WindSpeed, &run.WindFetch, &run.WindDirection, &run.Seed,
			&run.SignificantWaveHeight, &run.Duration, &run.Frames,
			&run.MinElevation, &run.MaxElevation, &run.RMSElevation, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
