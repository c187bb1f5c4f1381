package wave

import "math"

// RegularWave is a single deterministic sinusoidal component of the sea.
type RegularWave struct {
	Amplitude  float64 // meters
	Frequency  float64 // angular frequency, rad/s
	WaveNumber float64 // rad/m
	Direction  float64 // heading the wave travels toward, rad from North
	Phase      float64 // rad
}

// newRegularWave builds a component using the deep-water dispersion relation.
func newRegularWave(env Env, amplitude, frequency, direction, phase float64) RegularWave {
	return RegularWave{
		Amplitude:  amplitude,
		Frequency:  frequency,
		WaveNumber: frequency * frequency / env.Gravity,
		Direction:  NormalizeAngle(direction),
		Phase:      phase,
	}
}

// PhaseAt returns the total phase angle of the wave at (x, y) and time t.
func (w RegularWave) PhaseAt(x, y, t float64) float64 {
	return w.WaveNumber*(x*math.Cos(w.Direction)+y*math.Sin(w.Direction)) - w.Frequency*t + w.Phase
}

// Elevation returns the surface elevation contributed by this wave.
func (w RegularWave) Elevation(x, y, t float64) float64 {
	return w.Amplitude * math.Cos(w.PhaseAt(x, y, t))
}

// Period returns the wave period in seconds.
func (w RegularWave) Period() float64 {
	return 2 * math.Pi / w.Frequency
}

// Wavelength returns the wave length in meters.
func (w RegularWave) Wavelength() float64 {
	return 2 * math.Pi / w.WaveNumber
}
