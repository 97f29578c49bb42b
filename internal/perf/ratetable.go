// Package perf implements the portfolio-performance calculation core:
// inflation accumulation, per-position return statistics, lot merging,
// and historical growth-series reconstruction.
//
// Every function in this package is pure: rate tables and the current
// year are injected by the caller, there is no I/O, no clock access,
// and no shared state. Inputs are assumed to be sanity-checked
// non-negative decimals; invalid numeric situations short-circuit to
// defined neutral results rather than returning errors.
package perf

import "math"

// RateTable is a year-indexed table of annual percentage rates
// (e.g. 3.2 means +3.2% for that year). LatestYear marks the most
// recent year with data; lookups outside the table fall back to a
// caller-chosen default rate.
type RateTable struct {
	LatestYear int
	Rates      map[int]float64
}

// Rate returns the rate for the given year and whether it was present.
func (t RateTable) Rate(year int) (float64, bool) {
	r, ok := t.Rates[year]
	return r, ok
}

// rateOrDefault looks up a year's rate, substituting the given default
// for years the table does not cover.
func rateOrDefault(t RateTable, year int, def float64) float64 {
	if r, ok := t.Rates[year]; ok {
		return r
	}
	return def
}

// round1 rounds to one decimal place. Percentage outputs of the stats
// calculator are rounded at the point of computation, so downstream
// merge and classification logic operates on the rounded values.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
