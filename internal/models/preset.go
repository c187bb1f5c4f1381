package models

import "time"

// Preset is a named set of wind and field parameters.
// Built-in presets have ID 0; saved presets carry their database key.
type Preset struct {
	ID            int64     `json:"id" toml:"-"`
	Name          string    `json:"name" toml:"name"`
	Description   string    `json:"description" toml:"description"`
	WindSpeed     float64   `json:"wind_speed" toml:"wind_speed"`         // m/s
	WindFetch     float64   `json:"wind_fetch" toml:"wind_fetch"`         // m
	WindDirection float64   `json:"wind_direction" toml:"wind_direction"` // degrees from North
	FieldLength   float64   `json:"field_length" toml:"field_length"`     // m, 0 means the full fetch
	Seed          int64     `json:"seed" toml:"seed"`
	CreatedAt     time.Time `json:"created_at" toml:"-"`
}
