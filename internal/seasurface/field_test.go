package seasurface

import (
	"errors"
	"math"
	"testing"

	"github.com/ngmaloney/seastate/internal/wave"
)

func newTestField(t *testing.T, mutate func(*Config)) *Field {
	t.Helper()
	cfg := DefaultConfig()
	cfg.ControlPoints = 10
	if mutate != nil {
		mutate(&cfg)
	}
	f, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
}

func TestNew_Defaults(t *testing.T) {
	f := newTestField(t, func(c *Config) { c.ControlPoints = 0 })

	if f.ControlPointCount() != DefaultControlPoints {
		t.Errorf("ControlPointCount() = %d, want %d", f.ControlPointCount(), DefaultControlPoints)
	}
	if f.FieldLength() != f.WindFetch() {
		t.Errorf("FieldLength() = %v, want fetch %v", f.FieldLength(), f.WindFetch())
	}
	if f.State() != StateStale {
		t.Errorf("State() = %v, want stale", f.State())
	}
	if !f.Spectrum().Built() {
		t.Error("Spectrum() not built")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no fetch", func(c *Config) { c.WindFetch = 0 }},
		{"no wind", func(c *Config) { c.WindSpeed = 0 }},
		{"length beyond fetch", func(c *Config) { c.FieldLength = 2000 }},
		{"negative length", func(c *Config) { c.FieldLength = -1 }},
		{"negative count", func(c *Config) { c.ControlPoints = -4 }},
		{"bad spectrum config", func(c *Config) { c.Spectrum.FrequencyCount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := New(cfg); !errors.Is(err, wave.ErrInvalidParameter) {
				t.Errorf("New() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		n      int
		last   Point
	}{
		{"single point at origin", 500, 1, Point{}},
		{"two points span the edge", 500, 2, Point{X: 500, Y: 500}},
		{"fifty points", 500, 50, Point{X: 500, Y: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := layout(tt.length, tt.n)
			if len(grid) != tt.n || len(grid[0]) != tt.n {
				t.Fatalf("grid is %dx%d, want %dx%d", len(grid), len(grid[0]), tt.n, tt.n)
			}
			got := grid[tt.n-1][tt.n-1]
			if math.Abs(got.X-tt.last.X) > 1e-9 || math.Abs(got.Y-tt.last.Y) > 1e-9 || got.Z != 0 {
				t.Errorf("last point = %+v, want %+v", got, tt.last)
			}
			if grid[0][0] != (Point{}) {
				t.Errorf("first point = %+v, want origin", grid[0][0])
			}
		})
	}
}

func TestSetWindFetch_ClampsLength(t *testing.T) {
	f := newTestField(t, func(c *Config) { c.FieldLength = 800 })
	if err := f.AdvanceTo(1); err != nil {
		t.Fatalf("AdvanceTo() error = %v", err)
	}

	if err := f.SetWindFetch(300); err != nil {
		t.Fatalf("SetWindFetch() error = %v", err)
	}
	if f.FieldLength() != 300 {
		t.Errorf("FieldLength() = %v, want 300", f.FieldLength())
	}
	if f.State() != StateStale {
		t.Errorf("State() = %v, want stale", f.State())
	}
	pts := f.ControlPoints()
	last := pts[len(pts)-1][len(pts)-1]
	if math.Abs(last.X-300) > 1e-9 || last.Z != 0 {
		t.Errorf("last point = %+v after clamp", last)
	}

	// A longer fetch leaves the length alone.
	if err := f.SetWindFetch(5000); err != nil {
		t.Fatalf("SetWindFetch() error = %v", err)
	}
	if f.FieldLength() != 300 {
		t.Errorf("FieldLength() = %v, want 300", f.FieldLength())
	}
}

func TestSetters_FailureLeavesState(t *testing.T) {
	f := newTestField(t, nil)
	if err := f.AdvanceTo(2); err != nil {
		t.Fatalf("AdvanceTo() error = %v", err)
	}
	spec := f.Spectrum()
	before := f.ControlPoints()

	tests := []struct {
		name string
		call func() error
	}{
		{"zero fetch", func() error { return f.SetWindFetch(0) }},
		{"negative speed", func() error { return f.SetWindSpeed(-1) }},
		{"NaN direction", func() error { return f.SetWindDirection(math.NaN()) }},
		{"length beyond fetch", func() error { return f.SetFieldLength(f.WindFetch() + 1) }},
		{"zero points", func() error { return f.SetControlPointCount(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, wave.ErrInvalidParameter) {
				t.Fatalf("error = %v, want ErrInvalidParameter", err)
			}
			if f.Spectrum() != spec {
				t.Error("spectrum replaced after failed setter")
			}
			if f.State() != StateReady {
				t.Errorf("State() = %v, want ready", f.State())
			}
			after := f.ControlPoints()
			if len(after) != len(before) || after[3][4] != before[3][4] {
				t.Error("control points changed after failed setter")
			}
		})
	}
}

func TestSetters_MarkStale(t *testing.T) {
	tests := []struct {
		name string
		call func(*Field) error
	}{
		{"wind speed", func(f *Field) error { return f.SetWindSpeed(15) }},
		{"wind direction", func(f *Field) error { return f.SetWindDirection(math.Pi / 3) }},
		{"field length", func(f *Field) error { return f.SetFieldLength(250) }},
		{"control points", func(f *Field) error { return f.SetControlPointCount(7) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(t, nil)
			if err := f.AdvanceTo(1); err != nil {
				t.Fatalf("AdvanceTo() error = %v", err)
			}
			if err := tt.call(f); err != nil {
				t.Fatalf("setter error = %v", err)
			}
			if f.State() != StateStale {
				t.Errorf("State() = %v, want stale", f.State())
			}
		})
	}
}

func TestSetWindSpeed_RebuildsSpectrum(t *testing.T) {
	f := newTestField(t, nil)
	calm := f.Spectrum().SignificantWaveHeight()
	if err := f.SetWindSpeed(20); err != nil {
		t.Fatalf("SetWindSpeed() error = %v", err)
	}
	if got := f.Spectrum().SignificantWaveHeight(); got <= calm {
		t.Errorf("Hs after stronger wind = %v, want above %v", got, calm)
	}
	if f.WindSpeed() != 20 {
		t.Errorf("WindSpeed() = %v, want 20", f.WindSpeed())
	}
}

func TestAdvanceTo_MatchesSpectrum(t *testing.T) {
	f := newTestField(t, func(c *Config) { c.Workers = 3 })
	if err := f.AdvanceTo(4.5); err != nil {
		t.Fatalf("AdvanceTo() error = %v", err)
	}
	if f.State() != StateReady || f.Time() != 4.5 {
		t.Fatalf("State() = %v, Time() = %v", f.State(), f.Time())
	}
	for _, row := range f.ControlPoints() {
		for _, p := range row {
			if want := f.Spectrum().Elevation(p.X, p.Y, 4.5); p.Z != want {
				t.Fatalf("point (%v, %v) z = %v, want %v", p.X, p.Y, p.Z, want)
			}
		}
	}
}

func TestAdvanceTo_Invalid(t *testing.T) {
	var zero Field
	if err := zero.AdvanceTo(1); !errors.Is(err, wave.ErrPreconditionViolated) {
		t.Errorf("zero Field AdvanceTo() error = %v, want ErrPreconditionViolated", err)
	}
	var nilField *Field
	if err := nilField.SetWindSpeed(3); !errors.Is(err, wave.ErrPreconditionViolated) {
		t.Errorf("nil Field SetWindSpeed() error = %v, want ErrPreconditionViolated", err)
	}

	f := newTestField(t, nil)
	if err := f.AdvanceTo(math.Inf(1)); !errors.Is(err, wave.ErrInvalidParameter) {
		t.Errorf("AdvanceTo(+Inf) error = %v, want ErrInvalidParameter", err)
	}
	if f.State() != StateStale {
		t.Errorf("State() = %v, want stale", f.State())
	}
}

func TestScenario_FiftyByFiftyField(t *testing.T) {
	f, err := New(Config{
		Spectrum:      wave.DefaultConfig(),
		WindFetch:     1000,
		WindSpeed:     10,
		FieldLength:   500,
		ControlPoints: 50,
		Seed:          42,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := f.AdvanceTo(10); err != nil {
		t.Fatalf("AdvanceTo() error = %v", err)
	}

	var bound float64
	for _, c := range f.Spectrum().Components() {
		bound += c.Amplitude
	}
	hs := f.Spectrum().SignificantWaveHeight()

	pts := f.ControlPoints()
	if len(pts) != 50 {
		t.Fatalf("rows = %d, want 50", len(pts))
	}
	for _, row := range pts {
		for _, p := range row {
			if math.IsNaN(p.Z) || math.IsInf(p.Z, 0) {
				t.Fatalf("non-finite height at (%v, %v)", p.X, p.Y)
			}
			if math.Abs(p.Z) > bound+1e-9 {
				t.Fatalf("height %v exceeds amplitude sum %v", p.Z, bound)
			}
			if math.Abs(p.Z) > 2*hs {
				t.Fatalf("height %v exceeds twice Hs %v", p.Z, hs)
			}
		}
	}
}

func TestControlPoints_ReturnsCopy(t *testing.T) {
	f := newTestField(t, nil)
	pts := f.ControlPoints()
	pts[0][0].Z = 99
	if f.ControlPoints()[0][0].Z == 99 {
		t.Error("ControlPoints() exposed internal storage")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateStale, "stale"},
		{StateReady, "ready"},
		{State(7), "State(7)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
