// Package wave builds discretized directional wave spectra and evaluates the
// sea-surface elevation they describe.
package wave

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

const (
	// DefaultFrequencyCount is the number of frequency bands in a spectrum.
	DefaultFrequencyCount = 20
	// DefaultDirectionCount is the number of direction bands in a spectrum.
	// Odd counts put a band centre on the mean heading.
	DefaultDirectionCount = 13
	// DefaultSpreadingExponent gives cos^2 directional spreading.
	DefaultSpreadingExponent = 1.0
	// MaxSpreadingExponent bounds s. Beyond it the spread is narrower than any
	// practical direction bin.
	MaxSpreadingExponent = 1e4
	// DefaultIntegrationSamples is the resolution of the working frequency grid
	// used to integrate the 1D spectrum.
	DefaultIntegrationSamples = 4096

	lowerEnergyThreshold = 0.001
	upperEnergyThreshold = 0.999

	// Working range as multiples of the modal frequency. Energy outside it is
	// below 1e-4 of the total.
	workingRangeLow  = 0.3
	workingRangeHigh = 12.0
)

// Config controls how spectra are discretized.
type Config struct {
	Env Env

	FrequencyCount int
	DirectionCount int

	// SpreadingExponent is s in D(theta) ~ cos^(2s)(theta - mean).
	SpreadingExponent float64

	IntegrationSamples int
}

// DefaultConfig returns the standard spectrum configuration.
func DefaultConfig() Config {
	return Config{
		Env:                DefaultEnv(),
		FrequencyCount:     DefaultFrequencyCount,
		DirectionCount:     DefaultDirectionCount,
		SpreadingExponent:  DefaultSpreadingExponent,
		IntegrationSamples: DefaultIntegrationSamples,
	}
}

func (c Config) validate() error {
	if c.FrequencyCount < 1 {
		return fmt.Errorf("frequency count %d: %w", c.FrequencyCount, ErrInvalidParameter)
	}
	if c.DirectionCount < 1 {
		return fmt.Errorf("direction count %d: %w", c.DirectionCount, ErrInvalidParameter)
	}
	if c.IntegrationSamples < 2 {
		return fmt.Errorf("integration samples %d: %w", c.IntegrationSamples, ErrInvalidParameter)
	}
	if !(c.SpreadingExponent >= 0) || c.SpreadingExponent > MaxSpreadingExponent {
		return fmt.Errorf("spreading exponent %v: %w", c.SpreadingExponent, ErrInvalidParameter)
	}
	if !(c.Env.Gravity > 0) || math.IsInf(c.Env.Gravity, 0) {
		return fmt.Errorf("gravity %v: %w", c.Env.Gravity, ErrInvalidParameter)
	}
	return nil
}

// term caches the per-component values used by the elevation loop.
type term struct {
	a, kx, ky, w, p float64
}

// Spectrum is an irregular sea described as a table of regular waves. It is
// immutable once built and safe for concurrent reads.
type Spectrum struct {
	env Env

	hs      float64
	heading float64
	seed    int64

	nf, nd     int
	spreadExp  float64
	components []RegularWave // d*nf + f
	terms      []term

	modal      float64
	unitEnergy float64
	energy     float64
	minFreq    float64
	maxFreq    float64
	peakFreq   float64
	minHeading float64
	maxHeading float64
}

// Build constructs a spectrum with DefaultConfig.
func Build(hs, heading float64, seed int64) (*Spectrum, error) {
	return DefaultConfig().Build(hs, heading, seed)
}

// Build constructs a spectrum for significant wave height hs (m), mean heading
// (rad from North) and a random seed. Identical inputs give bit-identical
// component tables.
func (c Config) Build(hs, heading float64, seed int64) (*Spectrum, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if !(hs > 0) || math.IsInf(hs, 0) {
		return nil, fmt.Errorf("significant wave height %v: %w", hs, ErrInvalidParameter)
	}
	if math.IsNaN(heading) || math.IsInf(heading, 0) {
		return nil, fmt.Errorf("wave heading %v: %w", heading, ErrInvalidParameter)
	}

	s := &Spectrum{
		env:       c.Env,
		hs:        hs,
		heading:   NormalizeAngle(heading),
		seed:      seed,
		nf:        c.FrequencyCount,
		nd:        c.DirectionCount,
		spreadExp: c.SpreadingExponent,
		modal:     0.4 * math.Sqrt(c.Env.Gravity/hs),
	}
	s.minHeading = s.heading - math.Pi/2
	s.maxHeading = s.heading + math.Pi/2

	if err := s.locateBounds(c.IntegrationSamples); err != nil {
		return nil, err
	}
	if err := s.generate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Density returns the Bretschneider spectral density S(omega) in m2 s/rad.
func (s *Spectrum) Density(omega float64) float64 {
	return s.hs * s.hs * s.unitDensity(omega)
}

// unitDensity is S(omega)/Hs^2. Working in this form keeps amplitudes finite
// and nonzero for very small heights where Hs^2 would underflow.
func (s *Spectrum) unitDensity(omega float64) float64 {
	if omega <= 0 || s.modal == 0 {
		return 0
	}
	r := s.modal / omega
	r4 := r * r * r * r
	return 5.0 / 16.0 * r4 / omega * math.Exp(-1.25*r4)
}

// Spreading returns the continuous directional spreading D(theta), normalised
// to integrate to 1 over [MinHeading, MaxHeading]. It is zero outside that span.
func (s *Spectrum) Spreading(theta float64) float64 {
	d := math.Remainder(theta-s.heading, 2*math.Pi)
	if math.Abs(d) > math.Pi/2 {
		return 0
	}
	lg1, _ := math.Lgamma(s.spreadExp + 1)
	lg2, _ := math.Lgamma(s.spreadExp + 0.5)
	norm := math.Exp(lg1-lg2) / math.Sqrt(math.Pi)
	return norm * math.Pow(math.Cos(d), 2*s.spreadExp)
}

// locateBounds integrates S over the working range and finds the cumulative
// energy thresholds and the peak.
func (s *Spectrum) locateBounds(samples int) error {
	omegas := floats.Span(make([]float64, samples), workingRangeLow*s.modal, workingRangeHigh*s.modal)
	dens := make([]float64, samples)
	for i, w := range omegas {
		dens[i] = s.unitDensity(w)
	}

	total := integrate.Trapezoidal(omegas, dens)
	if !(total > 0) || math.IsInf(total, 0) {
		return fmt.Errorf("spectral energy %v for Hs %v: %w", total, s.hs, ErrInvalidParameter)
	}

	areas := make([]float64, samples)
	for i := 1; i < samples; i++ {
		areas[i] = 0.5 * (dens[i-1] + dens[i]) * (omegas[i] - omegas[i-1])
	}
	cum := floats.CumSum(make([]float64, samples), areas)

	s.unitEnergy = total
	s.energy = s.hs * s.hs * total
	s.minFreq = crossing(omegas, cum, lowerEnergyThreshold*total)
	s.maxFreq = crossing(omegas, cum, upperEnergyThreshold*total)
	s.peakFreq = omegas[floats.MaxIdx(dens)]
	return nil
}

// crossing returns the abscissa where the nondecreasing cumulative curve first
// reaches target, interpolating linearly between samples.
func crossing(x, cum []float64, target float64) float64 {
	i := sort.SearchFloat64s(cum, target)
	if i == 0 {
		return x[0]
	}
	if i >= len(cum) {
		return x[len(x)-1]
	}
	span := cum[i] - cum[i-1]
	if span <= 0 {
		return x[i]
	}
	return x[i-1] + (target-cum[i-1])/span*(x[i]-x[i-1])
}

// generate fills the component table. The PRNG is consumed direction-major so
// the table layout fixes which draw each component receives.
func (s *Spectrum) generate() error {
	freqs := make([]float64, s.nf)
	binEnergy := make([]float64, s.nf) // per unit Hs^2
	if s.nf == 1 {
		freqs[0] = s.peakFreq
		binEnergy[0] = s.unitEnergy
	} else {
		dw := (s.maxFreq - s.minFreq) / float64(s.nf)
		for j := range freqs {
			w := s.minFreq + (float64(j)+0.5)*dw
			freqs[j] = w
			binEnergy[j] = s.unitDensity(w) * dw
		}
	}

	headings := make([]float64, s.nd)
	weights := make([]float64, s.nd) // D(theta)*dTheta, sums to 1
	if s.nd == 1 {
		headings[0] = s.heading
		weights[0] = 1
	} else {
		// Weights are taken relative to the largest in log space so narrow
		// spreads do not underflow. Bin centres never sit on cos = 0.
		dth := math.Pi / float64(s.nd)
		for i := range headings {
			th := s.minHeading + (float64(i)+0.5)*dth
			headings[i] = th
			weights[i] = 2 * s.spreadExp * math.Log(math.Cos(th-s.heading))
		}
		top := floats.Max(weights)
		for i, lw := range weights {
			weights[i] = math.Exp(lw - top)
		}
		sum := floats.Sum(weights)
		if !(sum > 0) || math.IsInf(sum, 0) {
			return fmt.Errorf("directional weights sum to %v for spreading exponent %v: %w",
				sum, s.spreadExp, ErrInvalidParameter)
		}
		floats.Scale(1/sum, weights)
	}

	rng := rand.New(rand.NewPCG(uint64(s.seed), 0))
	s.components = make([]RegularWave, 0, s.nd*s.nf)
	s.terms = make([]term, 0, s.nd*s.nf)
	for d := 0; d < s.nd; d++ {
		for f := 0; f < s.nf; f++ {
			amp := s.hs * math.Sqrt(2*binEnergy[f]*weights[d])
			phase := 2 * math.Pi * rng.Float64()
			c := newRegularWave(s.env, amp, freqs[f], headings[d], phase)
			s.components = append(s.components, c)
			s.terms = append(s.terms, term{
				a:  c.Amplitude,
				kx: c.WaveNumber * math.Cos(c.Direction),
				ky: c.WaveNumber * math.Sin(c.Direction),
				w:  c.Frequency,
				p:  c.Phase,
			})
		}
	}
	return nil
}

// Elevation returns the sea-surface elevation (m) at (x, y) and time t (s).
// It performs no checks; a nil or zero-value spectrum yields 0.
func (s *Spectrum) Elevation(x, y, t float64) float64 {
	if s == nil {
		return 0
	}
	return s.PartialElevation(x, y, t, 0, len(s.terms))
}

// PartialElevation sums components [lo, hi) of the flat table. Partial sums
// over disjoint ranges add up to Elevation within rounding.
func (s *Spectrum) PartialElevation(x, y, t float64, lo, hi int) float64 {
	var h float64
	for _, c := range s.terms[lo:hi] {
		h += c.a * math.Cos(c.kx*x+c.ky*y-c.w*t+c.p)
	}
	return h
}

// ElevationAt is the checked form of Elevation.
func ElevationAt(s *Spectrum, x, y, t float64) (float64, error) {
	if !s.Built() {
		return 0, fmt.Errorf("elevation on unbuilt spectrum: %w", ErrPreconditionViolated)
	}
	return s.Elevation(x, y, t), nil
}

// Built reports whether the spectrum was produced by Build.
func (s *Spectrum) Built() bool {
	return s != nil && len(s.components) > 0
}

// Component returns the wave in direction band d and frequency band f.
func (s *Spectrum) Component(d, f int) RegularWave {
	return s.components[d*s.nf+f]
}

// Components returns a copy of the flat component table.
func (s *Spectrum) Components() []RegularWave {
	out := make([]RegularWave, len(s.components))
	copy(out, s.components)
	return out
}

// Len returns the number of components.
func (s *Spectrum) Len() int { return len(s.components) }

// FrequencyCount returns the number of frequency bands.
func (s *Spectrum) FrequencyCount() int { return s.nf }

// DirectionCount returns the number of direction bands.
func (s *Spectrum) DirectionCount() int { return s.nd }

// SignificantWaveHeight returns Hs in meters.
func (s *Spectrum) SignificantWaveHeight() float64 { return s.hs }

// MeanHeading returns the dominant heading in [0, 2*Pi).
func (s *Spectrum) MeanHeading() float64 { return s.heading }

// Seed returns the random seed the spectrum was built with.
func (s *Spectrum) Seed() int64 { return s.seed }

// ModalFrequency returns the analytic modal frequency in rad/s.
func (s *Spectrum) ModalFrequency() float64 { return s.modal }

// PeakFrequency returns the frequency of maximum sampled density in rad/s.
func (s *Spectrum) PeakFrequency() float64 { return s.peakFreq }

// MinFrequency returns the 0.1% cumulative-energy frequency in rad/s.
func (s *Spectrum) MinFrequency() float64 { return s.minFreq }

// MaxFrequency returns the 99.9% cumulative-energy frequency in rad/s.
func (s *Spectrum) MaxFrequency() float64 { return s.maxFreq }

// MinHeading returns the lower bound of the directional spread in radians.
func (s *Spectrum) MinHeading() float64 { return s.minHeading }

// MaxHeading returns the upper bound of the directional spread in radians.
func (s *Spectrum) MaxHeading() float64 { return s.maxHeading }

// Energy returns the zeroth spectral moment m0 (m2).
func (s *Spectrum) Energy() float64 { return s.energy }

// EnergyDensity returns the wave energy per unit sea area, rho*g*m0 (J/m2).
func (s *Spectrum) EnergyDensity() float64 {
	return s.env.WaterDensity * s.env.Gravity * s.energy
}
