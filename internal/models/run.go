package models

import "time"

// Run records one headless simulation
type Run struct {
	ID                    string    `json:"id"` // UUID
	PresetName            string    `json:"preset_name"`
	WindSpeed             float64   `json:"wind_speed"`
	WindFetch             float64   `json:"wind_fetch"`
	WindDirection         float64   `json:"wind_direction"` // degrees
	Seed                  int64     `json:"seed"`
	SignificantWaveHeight float64   `json:"significant_wave_height"`
	Duration              float64   `json:"duration"` // seconds of simulated time
	Frames                int       `json:"frames"`
	MinElevation          float64   `json:"min_elevation"`
	MaxElevation          float64   `json:"max_elevation"`
	RMSElevation          float64   `json:"rms_elevation"`
	CreatedAt             time.Time `json:"created_at"`
}
