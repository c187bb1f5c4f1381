// Package sim steps a sea surface through time and records a probe's
// elevation at every frame.
package sim

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ngmaloney/seastate/internal/database"
	"github.com/ngmaloney/seastate/internal/models"
	"github.com/ngmaloney/seastate/internal/seasurface"
	"github.com/ngmaloney/seastate/internal/wave"
)

// DefaultFrameStep is the simulated time between frames.
const DefaultFrameStep = 10 * time.Millisecond

// Config describes a single run.
type Config struct {
	Field      seasurface.Config
	PresetName string

	Duration  time.Duration
	FrameStep time.Duration

	// Probe position in meters.
	ProbeX, ProbeY float64

	// GridEvery advances the whole control grid every n frames. Zero only
	// advances it on the last frame.
	GridEvery int
}

// Result is the output of a finished run.
type Result struct {
	Run     models.Run
	Series  models.ElevationSeries
	Field   *seasurface.Field
	Elapsed time.Duration
}

// Runner executes runs and optionally records them in the run log.
type Runner struct {
	log  logrus.FieldLogger
	runs *database.RunRepository
}

// NewRunner returns a runner. Both arguments may be nil.
func NewRunner(log logrus.FieldLogger, runs *database.RunRepository) *Runner {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Runner{log: log, runs: runs}
}

// Frames returns the number of frame intervals in a run, rounding up.
func (c Config) Frames() int {
	step := c.FrameStep
	if step <= 0 {
		step = DefaultFrameStep
	}
	return int(math.Ceil(float64(c.Duration) / float64(step)))
}

// Run builds the field and steps it from t=0 to the configured duration,
// sampling the probe once per frame including both end points.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("run duration %v: %w", cfg.Duration, wave.ErrInvalidParameter)
	}
	if cfg.FrameStep <= 0 {
		cfg.FrameStep = DefaultFrameStep
	}
	if cfg.GridEvery < 0 {
		return nil, fmt.Errorf("grid interval %d: %w", cfg.GridEvery, wave.ErrInvalidParameter)
	}

	id := uuid.New().String()
	log := r.log.WithField("run_id", id)
	cfg.Field.Logger = log

	field, err := seasurface.New(cfg.Field)
	if err != nil {
		return nil, fmt.Errorf("creating sea surface: %w", err)
	}
	spec := field.Spectrum()
	frames := cfg.Frames()

	log.WithFields(logrus.Fields{
		"preset":     cfg.PresetName,
		"hs":         spec.SignificantWaveHeight(),
		"components": spec.Len(),
		"frames":     humanize.Comma(int64(frames)),
		"grid":       fmt.Sprintf("%dx%d", field.ControlPointCount(), field.ControlPointCount()),
	}).Info("starting run")

	start := time.Now()
	res := &Result{
		Series: models.ElevationSeries{X: cfg.ProbeX, Y: cfg.ProbeY},
		Field:  field,
	}
	res.Series.Samples = make([]models.ElevationSample, 0, frames+1)

	step := cfg.FrameStep.Seconds()
	duration := cfg.Duration.Seconds()
	for i := 0; i <= frames; i++ {
		if err := ctx.Err(); err != nil {
			log.WithField("frame", i).Warn("run cancelled")
			return nil, fmt.Errorf("running simulation: %w", err)
		}
		t := math.Min(float64(i)*step, duration)

		z, err := wave.ElevationAt(spec, cfg.ProbeX, cfg.ProbeY, t)
		if err != nil {
			return nil, fmt.Errorf("sampling probe at t=%v: %w", t, err)
		}
		res.Series.Add(t, z)

		if i == frames || (cfg.GridEvery > 0 && i%cfg.GridEvery == 0) {
			if err := field.AdvanceTo(t); err != nil {
				return nil, err
			}
		}
	}
	res.Elapsed = time.Since(start)

	st := res.Series.Stats()
	res.Run = models.Run{
		ID:                    id,
		PresetName:            cfg.PresetName,
		WindSpeed:             field.WindSpeed(),
		WindFetch:             field.WindFetch(),
		WindDirection:         wave.Rad2Deg(field.WindDirection()),
		Seed:                  field.Seed(),
		SignificantWaveHeight: spec.SignificantWaveHeight(),
		Duration:              duration,
		Frames:                frames,
		MinElevation:          st.Min,
		MaxElevation:          st.Max,
		RMSElevation:          st.RMS,
		CreatedAt:             time.Now(),
	}

	log.WithFields(logrus.Fields{
		"elapsed": res.Elapsed.Round(time.Millisecond),
		"samples": humanize.Comma(int64(st.Count)),
		"max":     st.Max,
		"min":     st.Min,
	}).Info("run finished")

	if r.runs != nil {
		if err := r.runs.SaveRun(&res.Run); err != nil {
			return nil, fmt.Errorf("recording run: %w", err)
		}
	}
	return res, nil
}
