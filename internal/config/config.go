// Package config loads run descriptions from TOML files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ngmaloney/seastate/internal/seasurface"
	"github.com/ngmaloney/seastate/internal/sim"
	"github.com/ngmaloney/seastate/internal/wave"
)

// Wave configures spectrum discretization.
type Wave struct {
	FrequencyCount     int     `toml:"frequency_count"`
	DirectionCount     int     `toml:"direction_count"`
	SpreadingExponent  float64 `toml:"spreading_exponent"`
	IntegrationSamples int     `toml:"integration_samples"`
	Gravity            float64 `toml:"gravity"`
	WaterDensity       float64 `toml:"water_density"`
}

// Field configures the sea surface. Wind direction is in degrees from North.
type Field struct {
	Preset        string  `toml:"preset"`
	WindSpeed     float64 `toml:"wind_speed"`
	WindFetch     float64 `toml:"wind_fetch"`
	WindDirection float64 `toml:"wind_direction"`
	FieldLength   float64 `toml:"field_length"`
	ControlPoints int     `toml:"control_points"`
	Seed          int64   `toml:"seed"`
	Workers       int     `toml:"workers"`
}

// Run configures a headless simulation and its outputs.
type Run struct {
	Duration  duration `toml:"duration"`
	FrameStep duration `toml:"frame_step"`
	ProbeX    float64  `toml:"probe_x"`
	ProbeY    float64  `toml:"probe_y"`
	GridEvery int      `toml:"grid_every"`

	SeriesFile   string `toml:"series_file"`
	GridFile     string `toml:"grid_file"`
	SpectrumPlot string `toml:"spectrum_plot"`
	SeriesPlot   string `toml:"series_plot"`
	Database     string `toml:"database"`
}

// Config is a complete run file.
type Config struct {
	Wave  Wave  `toml:"wave"`
	Field Field `toml:"field"`
	Run   Run   `toml:"run"`
}

// duration decodes TOML strings like "30s" into a time.Duration.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	wc := wave.DefaultConfig()
	fc := seasurface.DefaultConfig()
	return Config{
		Wave: Wave{
			FrequencyCount:     wc.FrequencyCount,
			DirectionCount:     wc.DirectionCount,
			SpreadingExponent:  wc.SpreadingExponent,
			IntegrationSamples: wc.IntegrationSamples,
			Gravity:            wc.Env.Gravity,
			WaterDensity:       wc.Env.WaterDensity,
		},
		Field: Field{
			WindSpeed:     fc.WindSpeed,
			WindFetch:     fc.WindFetch,
			WindDirection: wave.Rad2Deg(fc.WindDirection),
			ControlPoints: fc.ControlPoints,
			Seed:          fc.Seed,
		},
		Run: Run{
			Duration:  duration{10 * time.Second},
			FrameStep: duration{sim.DefaultFrameStep},
		},
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %s", path, undec[0])
	}
	return cfg, nil
}

// Write saves cfg to path as TOML.
func Write(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encoding config: %w", err)
	}
	return f.Close()
}

// SpectrumConfig converts the [wave] section.
func (c Config) SpectrumConfig() wave.Config {
	return wave.Config{
		Env: wave.Env{
			Gravity:      c.Wave.Gravity,
			WaterDensity: c.Wave.WaterDensity,
		},
		FrequencyCount:     c.Wave.FrequencyCount,
		DirectionCount:     c.Wave.DirectionCount,
		SpreadingExponent:  c.Wave.SpreadingExponent,
		IntegrationSamples: c.Wave.IntegrationSamples,
	}
}

// FieldConfig converts the [wave] and [field] sections.
func (c Config) FieldConfig() seasurface.Config {
	return seasurface.Config{
		Spectrum:      c.SpectrumConfig(),
		WindFetch:     c.Field.WindFetch,
		WindSpeed:     c.Field.WindSpeed,
		WindDirection: wave.Deg2Rad(c.Field.WindDirection),
		Seed:          c.Field.Seed,
		FieldLength:   c.Field.FieldLength,
		ControlPoints: c.Field.ControlPoints,
		Workers:       c.Field.Workers,
	}
}

// SimConfig converts the whole file into a runner configuration.
func (c Config) SimConfig() sim.Config {
	return sim.Config{
		Field:      c.FieldConfig(),
		PresetName: c.Field.Preset,
		Duration:   c.Run.Duration.Duration,
		FrameStep:  c.Run.FrameStep.Duration,
		ProbeX:     c.Run.ProbeX,
		ProbeY:     c.Run.ProbeY,
		GridEvery:  c.Run.GridEvery,
	}
}
