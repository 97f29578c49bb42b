package perf

import "math"

// defaultInflationRate is the annual rate assumed for holding years
// that predate the inflation table's span.
const defaultInflationRate = 3.0

// CumulativeInflation converts a holding duration in fractional years
// into the total compounded price-level increase over that period,
// expressed as a multiplier minus one (0.1025 means +10.25%).
//
// The walk starts at the table's most recent year and moves backward
// one year per full year held, compounding total *= (1 + rate/100).
// The fractional remainder compounds geometrically against the next
// year's rate: total *= (1 + rate/100)^remainder. Linear scaling of
// the remainder understates the drag and is wrong.
func CumulativeInflation(table RateTable, yearsHeld float64) float64 {
	if yearsHeld <= 0 {
		return 0
	}

	total := 1.0
	year := table.LatestYear

	full := int(math.Floor(yearsHeld))
	for i := 0; i < full; i++ {
		rate := rateOrDefault(table, year, defaultInflationRate)
		total *= 1 + rate/100
		year--
	}

	if frac := yearsHeld - float64(full); frac > 0 {
		rate := rateOrDefault(table, year, defaultInflationRate)
		total *= math.Pow(1+rate/100, frac)
	}

	return total - 1
}

// AverageInflationRate returns the simple arithmetic mean of the annual
// inflation rates over the trailing ceil(years) years (minimum one).
// It is a rough fallback estimate for callers without a specific
// holding duration; it is deliberately not geometric and must not be
// confused with the cumulative figure from CumulativeInflation.
func AverageInflationRate(table RateTable, years float64) float64 {
	n := int(math.Ceil(years))
	if n < 1 {
		n = 1
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += rateOrDefault(table, table.LatestYear-i, defaultInflationRate)
	}
	return sum / float64(n)
}
