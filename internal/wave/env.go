package wave

import "math"

// Env holds the physical constants used when building a spectrum.
type Env struct {
	Gravity      float64 // m/s2
	WaterDensity float64 // kg/m3
}

// DefaultEnv returns standard gravity and sea water density.
func DefaultEnv() Env {
	return Env{
		Gravity:      9.81,
		WaterDensity: 1025,
	}
}

// NormalizeAngle wraps an angle in radians into [0, 2*Pi).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// Mod of a tiny negative value can round up to exactly 2*Pi.
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
