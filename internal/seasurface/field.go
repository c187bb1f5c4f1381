// Package seasurface maintains a square grid of control points whose heights
// follow a wind-driven irregular sea.
package seasurface

import (
	"fmt"
	"io"
	"math"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ngmaloney/seastate/internal/wave"
)

// DefaultControlPoints is the number of control points per grid edge.
const DefaultControlPoints = 100

// State tracks whether control point heights match the last requested time.
type State int

const (
	StateStale State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateStale:
		return "stale"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Point is a control point position in meters. X points East, Y North, Z up.
type Point struct {
	X, Y, Z float64
}

// Config holds the parameters of a new field.
type Config struct {
	Spectrum wave.Config

	WindFetch     float64 // m
	WindSpeed     float64 // m/s
	WindDirection float64 // rad from North
	Seed          int64

	// FieldLength defaults to WindFetch when zero.
	FieldLength   float64
	ControlPoints int

	// Workers bounds the goroutines used by AdvanceTo. Zero means GOMAXPROCS.
	Workers int

	Logger logrus.FieldLogger
}

// DefaultConfig returns a moderate breeze over a 1 km fetch.
func DefaultConfig() Config {
	return Config{
		Spectrum:      wave.DefaultConfig(),
		WindFetch:     1000,
		WindSpeed:     10,
		WindDirection: 0,
		Seed:          1,
		ControlPoints: DefaultControlPoints,
	}
}

// Field is a sea-surface patch. It is not safe for concurrent mutation.
type Field struct {
	cfg      wave.Config
	log      logrus.FieldLogger
	workers  int
	spectrum *wave.Spectrum

	fetch     float64
	speed     float64
	direction float64
	seed      int64
	length    float64
	n         int

	points [][]Point
	time   float64
	state  State
}

// New validates cfg, builds the spectrum and lays out the control grid.
func New(cfg Config) (*Field, error) {
	if cfg.ControlPoints == 0 {
		cfg.ControlPoints = DefaultControlPoints
	}
	if cfg.FieldLength == 0 {
		cfg.FieldLength = cfg.WindFetch
	}
	if err := checkPositive("wind fetch", cfg.WindFetch); err != nil {
		return nil, err
	}
	if err := checkLength(cfg.FieldLength, cfg.WindFetch); err != nil {
		return nil, err
	}
	if err := checkCount(cfg.ControlPoints); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	f := &Field{
		cfg:       cfg.Spectrum,
		log:       logger,
		workers:   workers,
		fetch:     cfg.WindFetch,
		speed:     cfg.WindSpeed,
		direction: cfg.WindDirection,
		seed:      cfg.Seed,
		length:    cfg.FieldLength,
		n:         cfg.ControlPoints,
	}
	spec, err := f.buildSpectrum(cfg.WindSpeed, cfg.WindFetch, cfg.WindDirection)
	if err != nil {
		return nil, err
	}
	f.spectrum = spec
	f.points = layout(f.length, f.n)
	return f, nil
}

func (f *Field) buildSpectrum(speed, fetch, direction float64) (*wave.Spectrum, error) {
	hs, err := wave.FetchLimitedHeight(f.cfg.Env, speed, fetch)
	if err != nil {
		return nil, fmt.Errorf("deriving sea state: %w", err)
	}
	spec, err := f.cfg.Build(hs, direction, f.seed)
	if err != nil {
		return nil, fmt.Errorf("building spectrum: %w", err)
	}
	f.log.WithFields(logrus.Fields{
		"hs":         hs,
		"heading":    spec.MeanHeading(),
		"components": spec.Len(),
	}).Debug("spectrum rebuilt")
	return spec, nil
}

// layout returns an n by n grid spanning [0, length] on both axes.
func layout(length float64, n int) [][]Point {
	step := 0.0
	if n > 1 {
		step = length / float64(n-1)
	}
	rows := make([][]Point, n)
	for i := range rows {
		rows[i] = make([]Point, n)
		for j := range rows[i] {
			rows[i][j] = Point{X: float64(j) * step, Y: float64(i) * step}
		}
	}
	return rows
}

func (f *Field) regenerate() {
	f.points = layout(f.length, f.n)
	f.state = StateStale
	f.log.WithFields(logrus.Fields{
		"length": f.length,
		"points": f.n,
	}).Debug("control grid regenerated")
}

func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %v: %w", name, v, wave.ErrInvalidParameter)
	}
	return nil
}

func checkLength(length, fetch float64) error {
	if err := checkPositive("field length", length); err != nil {
		return err
	}
	if length > fetch {
		return fmt.Errorf("field length %v exceeds wind fetch %v: %w", length, fetch, wave.ErrInvalidParameter)
	}
	return nil
}

func checkCount(n int) error {
	if n < 1 {
		return fmt.Errorf("control point count %d: %w", n, wave.ErrInvalidParameter)
	}
	return nil
}

// SetWindFetch changes the fetch and rebuilds the spectrum. A field longer than
// the new fetch is shortened to it.
func (f *Field) SetWindFetch(fetch float64) error {
	if err := f.ensure(); err != nil {
		return err
	}
	if err := checkPositive("wind fetch", fetch); err != nil {
		return err
	}
	spec, err := f.buildSpectrum(f.speed, fetch, f.direction)
	if err != nil {
		return err
	}
	f.fetch = fetch
	f.spectrum = spec
	if f.length > fetch {
		f.length = fetch
	}
	f.regenerate()
	return nil
}

// SetWindSpeed changes the wind speed and rebuilds the spectrum.
func (f *Field) SetWindSpeed(speed float64) error {
	if err := f.ensure(); err != nil {
		return err
	}
	spec, err := f.buildSpectrum(speed, f.fetch, f.direction)
	if err != nil {
		return err
	}
	f.speed = speed
	f.spectrum = spec
	f.state = StateStale
	return nil
}

// SetWindDirection changes the wind heading and rebuilds the spectrum.
func (f *Field) SetWindDirection(direction float64) error {
	if err := f.ensure(); err != nil {
		return err
	}
	spec, err := f.buildSpectrum(f.speed, f.fetch, direction)
	if err != nil {
		return err
	}
	f.direction = direction
	f.spectrum = spec
	f.state = StateStale
	return nil
}

// SetFieldLength resizes the grid. The length may not exceed the fetch.
func (f *Field) SetFieldLength(length float64) error {
	if err := f.ensure(); err != nil {
		return err
	}
	if err := checkLength(length, f.fetch); err != nil {
		return err
	}
	f.length = length
	f.regenerate()
	return nil
}

// SetControlPointCount changes the number of points per grid edge.
func (f *Field) SetControlPointCount(n int) error {
	if err := f.ensure(); err != nil {
		return err
	}
	if err := checkCount(n); err != nil {
		return err
	}
	f.n = n
	f.regenerate()
	return nil
}

func (f *Field) ensure() error {
	if f == nil || !f.spectrum.Built() {
		return fmt.Errorf("field was not created with New: %w", wave.ErrPreconditionViolated)
	}
	return nil
}

// AdvanceTo sets every control point height to the sea elevation at time t.
// Rows are evaluated in parallel. Heights are committed only if all rows
// succeed.
func (f *Field) AdvanceTo(t float64) error {
	if err := f.ensure(); err != nil {
		return err
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("time %v: %w", t, wave.ErrInvalidParameter)
	}

	heights := make([][]float64, len(f.points))
	var g errgroup.Group
	g.SetLimit(f.workers)
	for i, row := range f.points {
		heights[i] = make([]float64, len(row))
		g.Go(func() error {
			for j, p := range row {
				z := f.spectrum.Elevation(p.X, p.Y, t)
				if math.IsNaN(z) || math.IsInf(z, 0) {
					return fmt.Errorf("elevation at row %d col %d: %v", i, j, z)
				}
				heights[i][j] = z
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("advancing field to t=%v: %w", t, err)
	}

	for i, row := range heights {
		for j, z := range row {
			f.points[i][j].Z = z
		}
	}
	f.time = t
	f.state = StateReady
	return nil
}

// ControlPoints returns a copy of the control grid, indexed [row][col] with
// rows along Y.
func (f *Field) ControlPoints() [][]Point {
	out := make([][]Point, len(f.points))
	for i, row := range f.points {
		out[i] = append([]Point(nil), row...)
	}
	return out
}

// Heights returns the control point elevations, indexed [row][col].
func (f *Field) Heights() [][]float64 {
	out := make([][]float64, len(f.points))
	for i, row := range f.points {
		out[i] = make([]float64, len(row))
		for j, p := range row {
			out[i][j] = p.Z
		}
	}
	return out
}

// Spectrum returns the spectrum currently driving the field.
func (f *Field) Spectrum() *wave.Spectrum { return f.spectrum }

// State reports whether the heights are current.
func (f *Field) State() State { return f.state }

// Time returns the time of the last successful AdvanceTo.
func (f *Field) Time() float64 { return f.time }

func (f *Field) FieldLength() float64   { return f.length }
func (f *Field) WindFetch() float64     { return f.fetch }
func (f *Field) WindSpeed() float64     { return f.speed }
func (f *Field) WindDirection() float64 { return f.direction }
func (f *Field) Seed() int64            { return f.seed }

// ControlPointCount returns the number of points per grid edge.
func (f *Field) ControlPointCount() int { return f.n }

// Spacing returns the distance between neighbouring control points.
func (f *Field) Spacing() float64 {
	if f.n < 2 {
		return 0
	}
	return f.length / float64(f.n-1)
}
