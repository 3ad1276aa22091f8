package domain

import (
	"strconv"
	"strings"
)

// =============================================================================
// Risk Scoring
// =============================================================================

// RiskBand classifies a probability x impact score. One banding table is
// used across every document type so summary and detail sections always
// agree: score < 5 Low, 5-8 Medium, 9-14 High, >= 15 Critical.
type RiskBand string

const (
	RiskBandLow      RiskBand = "Low"
	RiskBandMedium   RiskBand = "Medium"
	RiskBandHigh     RiskBand = "High"
	RiskBandCritical RiskBand = "Critical"
)

// RiskLevel converts a qualitative probability or impact value to the
// 1-5 scale. Accepts named levels ("High"), numeric strings ("4"), and
// plain integers in range; anything unrecognized maps to 3 (Medium).
func RiskLevel(value string) int {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "very low", "very_low", "negligible", "rare":
		return 1
	case "low", "unlikely", "minor":
		return 2
	case "medium", "moderate", "possible":
		return 3
	case "high", "likely", "major":
		return 4
	case "very high", "very_high", "critical", "severe", "almost certain":
		return 5
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 5 {
		return n
	}
	return 3
}

// RiskScore multiplies probability and impact on the 1-5 scale.
func RiskScore(probability, impact string) int {
	return RiskLevel(probability) * RiskLevel(impact)
}

// BandForScore maps a risk score to its band.
func BandForScore(score int) RiskBand {
	switch {
	case score >= 15:
		return RiskBandCritical
	case score >= 9:
		return RiskBandHigh
	case score >= 5:
		return RiskBandMedium
	default:
		return RiskBandLow
	}
}

// RiskBandColors maps bands to display colors.
var RiskBandColors = map[RiskBand]string{
	RiskBandLow:      "#10B981", // Emerald-500
	RiskBandMedium:   "#F59E0B", // Amber-500
	RiskBandHigh:     "#F97316", // Orange-500
	RiskBandCritical: "#DC2626", // Red-600
}

// Color returns the display color for a band.
func (b RiskBand) Color() string {
	if c, ok := RiskBandColors[b]; ok {
		return c
	}
	return "#6B7280"
}
