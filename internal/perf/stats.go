package perf

import (
	"math"

	"github.com/jkoster/portfolio-performance-backend/internal/model"
)

// Status classification thresholds on the inflation-adjusted return.
// Both boundaries are inclusive toward the middle band.
const (
	beatingInflationThreshold = 1.0
	losingPowerThreshold      = -1.0
)

// CalculateStats returns a copy of the position with its derived fields
// populated: nominal return, inflation-adjusted real return, CAGR, and
// the qualitative status band. Non-derived fields (ticker, name, shares,
// cost, price, years held) pass through untouched.
//
// Positions without a usable cost or price (either non-positive) get
// exactly zero for every derived numeric field and the neutral
// "Tracking Market" status. All percentages are rounded to one decimal
// place here, not at display time.
func CalculateStats(p model.Position, inflation RateTable) model.Position {
	if p.AvgCost <= 0 || p.CurrentPrice <= 0 {
		p.NominalReturnPct = 0
		p.RealReturnPct = 0
		p.CAGRPct = 0
		p.Status = model.StatusTrackingMarket
		return p
	}

	nominal := round1((p.CurrentPrice - p.AvgCost) / p.AvgCost * 100)

	cumInflation := CumulativeInflation(inflation, p.YearsHeld)
	real := round1(((1+nominal/100)/(1+cumInflation) - 1) * 100)

	// Holdings under one year are annualized as if held exactly one
	// year, so a quick 5% pop does not show up as a triple-digit CAGR.
	effectiveYears := 1.0
	if p.YearsHeld > 1 {
		effectiveYears = p.YearsHeld
	}
	cagr := round1((math.Pow(p.CurrentPrice/p.AvgCost, 1/effectiveYears) - 1) * 100)

	p.NominalReturnPct = nominal
	p.RealReturnPct = real
	p.CAGRPct = cagr
	p.Status = classifyStatus(real)
	return p
}

// classifyStatus maps a (rounded) real return percentage onto the
// three-band status enum. Boundary values belong to the upper band:
// exactly +1.0 is Beating Inflation, exactly -1.0 is Tracking Market.
func classifyStatus(realReturnPct float64) model.PositionStatus {
	switch {
	case realReturnPct >= beatingInflationThreshold:
		return model.StatusBeatingInflation
	case realReturnPct >= losingPowerThreshold:
		return model.StatusTrackingMarket
	default:
		return model.StatusLosingPower
	}
}
