package models

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ElevationSample is the sea surface height at a probe at one instant
type ElevationSample struct {
	Time      float64 // seconds since the run started
	Elevation float64 // meters
}

// ElevationSeries is the record of a single probe point
type ElevationSeries struct {
	X, Y    float64           // probe position, meters
	Samples []ElevationSample // Ordered by time
}

// SeriesStats summarizes an elevation record
type SeriesStats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	RMS   float64
	// SignificantHeight is 4 standard deviations of the record
	SignificantHeight float64
}

// Add appends a sample
func (s *ElevationSeries) Add(t, z float64) {
	s.Samples = append(s.Samples, ElevationSample{Time: t, Elevation: z})
}

// Times returns the sample times
func (s *ElevationSeries) Times() []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = smp.Time
	}
	return out
}

// Elevations returns the sample heights
func (s *ElevationSeries) Elevations() []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = smp.Elevation
	}
	return out
}

// Between returns samples with from <= Time < to
func (s *ElevationSeries) Between(from, to float64) []ElevationSample {
	var samples []ElevationSample
	for _, smp := range s.Samples {
		if smp.Time >= from && smp.Time < to {
			samples = append(samples, smp)
		}
	}
	return samples
}

// Stats computes summary statistics. An empty series gives zero stats.
func (s *ElevationSeries) Stats() SeriesStats {
	if len(s.Samples) == 0 {
		return SeriesStats{}
	}
	z := s.Elevations()
	st := SeriesStats{
		Count: len(z),
		Min:   floats.Min(z),
		Max:   floats.Max(z),
		Mean:  stat.Mean(z, nil),
		RMS:   math.Sqrt(floats.Dot(z, z) / float64(len(z))),
	}
	if len(z) > 1 {
		st.SignificantHeight = 4 * stat.StdDev(z, nil)
	}
	return st
}
