package presets

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ngmaloney/seastate/internal/database"
	"github.com/ngmaloney/seastate/internal/models"
)

// Repository handles persistence for user-defined presets
type Repository struct {
	dbPath string
}

// NewRepository creates a preset repository backed by the database at dbPath
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

// SavePreset inserts a preset or updates the one with the same name
func (r *Repository) SavePreset(p *models.Preset) error {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		INSERT INTO sea_presets (name, description, wind_speed, wind_fetch, wind_direction, field_length, seed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			wind_speed = excluded.wind_speed,
			wind_fetch = excluded.wind_fetch,
			wind_direction = excluded.wind_direction,
			field_length = excluded.field_length,
			seed = excluded.seed,
			created_at = excluded.created_at
		RETURNING id
	`

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	err = db.QueryRow(query,
		p.Name,
		p.Description,
		p.WindSpeed,
		p.WindFetch,
		p.WindDirection,
		p.FieldLength,
		p.Seed,
		p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("saving preset: %w", err)
	}

	return nil
}

const presetColumns = "id, name, description, wind_speed, wind_fetch, wind_direction, field_length, seed, created_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(row scanner) (models.Preset, error) {
	var p models.Preset
	var desc sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &desc, &p.WindSpeed, &p.WindFetch, &p.WindDirection, &p.FieldLength, &p.Seed, &p.CreatedAt); err != nil {
		return p, err
	}
	p.Description = desc.String
	return p, nil
}

// ListPresets retrieves all saved presets ordered by name
func (r *Repository) ListPresets() ([]models.Preset, error) {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT " + presetColumns + " FROM sea_presets ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying presets: %w", err)
	}
	defer rows.Close()

	var presets []models.Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning preset: %w", err)
		}
		presets = append(presets, p)
	}

	return presets, rows.Err()
}

// GetPreset returns the saved preset with the given name, or nil if there is none
func (r *Repository) GetPreset(name string) (*models.Preset, error) {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	p, err := scanPreset(db.QueryRow("SELECT "+presetColumns+" FROM sea_presets WHERE name = ? COLLATE NOCASE", name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying preset %q: %w", name, err)
	}
	return &p, nil
}

// DeletePreset removes a saved preset by name, ignoring case
func (r *Repository) DeletePreset(name string) error {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := db.Exec("DELETE FROM sea_presets WHERE name = ? COLLATE NOCASE", name)
	if err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no saved preset named %q", name)
	}
	return nil
}
