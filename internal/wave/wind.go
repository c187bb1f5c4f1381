package wave

import (
	"fmt"
	"math"
)

const (
	// JONSWAP fetch-limited growth coefficient for g*Hs/U^2 against sqrt(g*F/U^2).
	fetchGrowthCoefficient = 1.6e-3
	// Dimensionless height of a fully developed Pierson-Moskowitz sea.
	fullyDevelopedHeight = 0.2088
)

// FetchLimitedHeight returns the significant wave height (m) raised by wind of
// speed windSpeed (m/s) blowing over fetch (m), capped at a fully developed sea.
func FetchLimitedHeight(env Env, windSpeed, fetch float64) (float64, error) {
	if !(windSpeed > 0) || math.IsInf(windSpeed, 0) {
		return 0, fmt.Errorf("wind speed %v: %w", windSpeed, ErrInvalidParameter)
	}
	if !(fetch > 0) || math.IsInf(fetch, 0) {
		return 0, fmt.Errorf("wind fetch %v: %w", fetch, ErrInvalidParameter)
	}
	u2g := windSpeed * windSpeed / env.Gravity
	dimensionless := fetchGrowthCoefficient * math.Sqrt(fetch/u2g)
	if dimensionless > fullyDevelopedHeight {
		dimensionless = fullyDevelopedHeight
	}
	return dimensionless * u2g, nil
}
