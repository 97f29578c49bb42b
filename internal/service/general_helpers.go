package service

import "math"

// RoundingPrecision is the multiplier used for two-decimal rounding of
// monetary values and percentages in API responses.
const RoundingPrecision = 100

// round rounds a float64 value to two decimal places.
//
// The rounding uses the standard "round half up" approach via math.Round.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}
