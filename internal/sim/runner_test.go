package sim

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ngmaloney/seastate/internal/database"
	"github.com/ngmaloney/seastate/internal/seasurface"
	"github.com/ngmaloney/seastate/internal/wave"
)

func testConfig() Config {
	field := seasurface.DefaultConfig()
	field.ControlPoints = 8
	field.FieldLength = 200
	return Config{
		Field:      field,
		PresetName: "test",
		Duration:   time.Second,
		ProbeX:     25,
		ProbeY:     40,
	}
}

func TestConfig_Frames(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		step     time.Duration
		want     int
	}{
		{"default step", time.Second, 0, 100},
		{"exact", 2 * time.Second, 500 * time.Millisecond, 4},
		{"rounds up", 1050 * time.Millisecond, 100 * time.Millisecond, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{Duration: tt.duration, FrameStep: tt.step}
			if got := c.Frames(); got != tt.want {
				t.Errorf("Frames() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRunner_Run(t *testing.T) {
	r := NewRunner(nil, nil)
	res, err := r.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := uuid.Parse(res.Run.ID); err != nil {
		t.Errorf("run id %q is not a UUID: %v", res.Run.ID, err)
	}
	if len(res.Series.Samples) != 101 {
		t.Fatalf("recorded %d samples, want 101", len(res.Series.Samples))
	}
	last := res.Series.Samples[100]
	if math.Abs(last.Time-1) > 1e-12 {
		t.Errorf("last sample at t=%v, want 1", last.Time)
	}

	spec := res.Field.Spectrum()
	for _, smp := range res.Series.Samples {
		if want := spec.Elevation(25, 40, smp.Time); smp.Elevation != want {
			t.Fatalf("sample at t=%v = %v, want %v", smp.Time, smp.Elevation, want)
		}
	}

	if res.Field.State() != seasurface.StateReady || res.Field.Time() != last.Time {
		t.Errorf("field state %v at t=%v after run", res.Field.State(), res.Field.Time())
	}
	if res.Run.MaxElevation < res.Run.MinElevation || res.Run.Frames != 100 {
		t.Errorf("Run = %+v", res.Run)
	}
}

func TestRunner_Deterministic(t *testing.T) {
	r := NewRunner(nil, nil)
	a, err := r.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	b, err := r.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if a.Run.ID == b.Run.ID {
		t.Error("two runs share an id")
	}
	for i := range a.Series.Samples {
		if a.Series.Samples[i] != b.Series.Samples[i] {
			t.Fatalf("sample %d differs: %+v vs %+v", i, a.Series.Samples[i], b.Series.Samples[i])
		}
	}
}

func TestRunner_RecordsRun(t *testing.T) {
	repo := database.NewRunRepository(filepath.Join(t.TempDir(), "runs.db"))
	r := NewRunner(nil, repo)

	res, err := r.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	runs, err := repo.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 1 || runs[0].ID != res.Run.ID {
		t.Fatalf("ListRuns() = %+v, want run %s", runs, res.Run.ID)
	}
	if runs[0].PresetName != "test" {
		t.Errorf("PresetName = %q, want test", runs[0].PresetName)
	}
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil, nil).Run(ctx, testConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunner_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero duration", func(c *Config) { c.Duration = 0 }},
		{"negative grid interval", func(c *Config) { c.GridEvery = -1 }},
		{"calm wind", func(c *Config) { c.Field.WindSpeed = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			if _, err := NewRunner(nil, nil).Run(context.Background(), cfg); !errors.Is(err, wave.ErrInvalidParameter) {
				t.Errorf("Run() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}
