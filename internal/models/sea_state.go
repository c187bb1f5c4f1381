package models

import "fmt"

// SeaSeverity represents how hazardous a sea state is for small craft
type SeaSeverity string

const (
	SeverityExtreme  SeaSeverity = "Extreme"
	SeveritySevere   SeaSeverity = "Severe"
	SeverityModerate SeaSeverity = "Moderate"
	SeverityMinor    SeaSeverity = "Minor"
	SeverityUnknown  SeaSeverity = "Unknown"
)

// SeaScale is a Douglas sea scale degree
type SeaScale int

const (
	SeaCalmGlassy SeaScale = iota
	SeaCalmRippled
	SeaSmooth
	SeaSlight
	SeaModerate
	SeaRough
	SeaVeryRough
	SeaHigh
	SeaVeryHigh
	SeaPhenomenal
)

// Upper significant wave height (m) of each degree below phenomenal
var douglasLimits = []float64{0, 0.1, 0.5, 1.25, 2.5, 4, 6, 9, 14}

var douglasNames = []string{
	"Calm (glassy)",
	"Calm (rippled)",
	"Smooth",
	"Slight",
	"Moderate",
	"Rough",
	"Very rough",
	"High",
	"Very high",
	"Phenomenal",
}

// ClassifySeaState returns the Douglas degree for a significant wave height in meters
func ClassifySeaState(hs float64) SeaScale {
	for i, limit := range douglasLimits {
		if hs <= limit {
			return SeaScale(i)
		}
	}
	return SeaPhenomenal
}

func (s SeaScale) String() string {
	if s < 0 || int(s) >= len(douglasNames) {
		return fmt.Sprintf("SeaScale(%d)", int(s))
	}
	return douglasNames[s]
}

// Severity maps the degree onto the hazard levels used for display
func (s SeaScale) Severity() SeaSeverity {
	switch {
	case s < SeaCalmGlassy || s > SeaPhenomenal:
		return SeverityUnknown
	case s >= SeaHigh:
		return SeverityExtreme
	case s >= SeaRough:
		return SeveritySevere
	case s == SeaModerate:
		return SeverityModerate
	default:
		return SeverityMinor
	}
}

// MetersToFeet converts a height in meters to feet
func MetersToFeet(m float64) float64 {
	return m / 0.3048
}
