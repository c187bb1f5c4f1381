package models

import (
	"math"
	"testing"
)

func TestClassifySeaState(t *testing.T) {
	tests := []struct {
		name string
		hs   float64
		want SeaScale
	}{
		{"glassy", 0, SeaCalmGlassy},
		{"rippled", 0.05, SeaCalmRippled},
		{"smooth boundary", 0.5, SeaSmooth},
		{"slight", 1.0, SeaSlight},
		{"moderate", 2.0, SeaModerate},
		{"rough", 3.2, SeaRough},
		{"very rough", 5.5, SeaVeryRough},
		{"high", 8, SeaHigh},
		{"very high", 12, SeaVeryHigh},
		{"phenomenal", 20, SeaPhenomenal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySeaState(tt.hs); got != tt.want {
				t.Errorf("ClassifySeaState(%v) = %v, want %v", tt.hs, got, tt.want)
			}
		})
	}
}

func TestSeaScale_Severity(t *testing.T) {
	tests := []struct {
		scale SeaScale
		want  SeaSeverity
	}{
		{SeaCalmGlassy, SeverityMinor},
		{SeaSlight, SeverityMinor},
		{SeaModerate, SeverityModerate},
		{SeaRough, SeveritySevere},
		{SeaVeryRough, SeveritySevere},
		{SeaHigh, SeverityExtreme},
		{SeaPhenomenal, SeverityExtreme},
		{SeaScale(42), SeverityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.scale.String(), func(t *testing.T) {
			if got := tt.scale.Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeaScale_String(t *testing.T) {
	if got := SeaModerate.String(); got != "Moderate" {
		t.Errorf("String() = %q, want Moderate", got)
	}
	if got := SeaScale(-1).String(); got != "SeaScale(-1)" {
		t.Errorf("String() = %q", got)
	}
}

func TestMetersToFeet(t *testing.T) {
	if got := MetersToFeet(0.3048); math.Abs(got-1) > 1e-12 {
		t.Errorf("MetersToFeet(0.3048) = %v, want 1", got)
	}
}
