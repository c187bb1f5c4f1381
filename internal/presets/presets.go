package presets

import (
	"context"

	"github.com/ngmaloney/seastate/internal/models"
)

// Source defines the interface for looking up sea state presets
type Source interface {
	Search(ctx context.Context, query string) ([]models.Preset, error)
	Get(ctx context.Context, name string) (*models.Preset, error)
}

// builtins are the sea states available without a database
func builtins() []models.Preset {
	return []models.Preset{
		{
			Name:          "calm",
			Description:   "Light air over a sheltered bay",
			WindSpeed:     3,
			WindFetch:     500,
			WindDirection: 0,
			Seed:          1,
		},
		{
			Name:          "moderate",
			Description:   "Moderate breeze over a coastal fetch",
			WindSpeed:     8,
			WindFetch:     20000,
			WindDirection: 225,
			FieldLength:   500,
			Seed:          7,
		},
		{
			Name:          "rough",
			Description:   "Strong breeze on open water",
			WindSpeed:     13,
			WindFetch:     100000,
			WindDirection: 270,
			FieldLength:   500,
			Seed:          42,
		},
		{
			Name:          "storm",
			Description:   "Storm force wind over an ocean fetch",
			WindSpeed:     26,
			WindFetch:     500000,
			WindDirection: 315,
			FieldLength:   1000,
			Seed:          1999,
		},
	}
}
