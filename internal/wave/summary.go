package wave

import "math"

// Summary carries the derived scalars of a spectrum for diagnostics.
type Summary struct {
	SignificantWaveHeight float64
	MeanHeading           float64
	Seed                  int64
	Components            int
	MinFrequency          float64
	PeakFrequency         float64
	MaxFrequency          float64
	MinHeading            float64
	MaxHeading            float64
	Energy                float64
	EnergyDensity         float64
}

// Summary returns the derived scalars of the spectrum.
func (s *Spectrum) Summary() Summary {
	return Summary{
		SignificantWaveHeight: s.hs,
		MeanHeading:           s.heading,
		Seed:                  s.seed,
		Components:            len(s.components),
		MinFrequency:          s.minFreq,
		PeakFrequency:         s.peakFreq,
		MaxFrequency:          s.maxFreq,
		MinHeading:            s.minHeading,
		MaxHeading:            s.maxHeading,
		Energy:                s.energy,
		EnergyDensity:         s.EnergyDensity(),
	}
}

// PeakPeriod returns the period (s) at the peak frequency.
func (s Summary) PeakPeriod() float64 {
	if s.PeakFrequency == 0 {
		return 0
	}
	return 2 * math.Pi / s.PeakFrequency
}
