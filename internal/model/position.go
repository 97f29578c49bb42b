package model

// PositionStatus classifies a position's inflation-adjusted performance.
// It is a closed set: every position is in exactly one of the three bands.
type PositionStatus string

const (
	// StatusBeatingInflation means the real return is at or above +1.0%.
	StatusBeatingInflation PositionStatus = "Beating Inflation"

	// StatusTrackingMarket is the middle band (real return in [-1.0, 1.0))
	// and also the neutral default when no usable cost/price data exists.
	StatusTrackingMarket PositionStatus = "Tracking Market"

	// StatusLosingPower means the real return is below -1.0%: the holding
	// is losing purchasing power after inflation.
	StatusLosingPower PositionStatus = "Losing Power"
)

// Position represents one held instrument in a portfolio.
//
// Ticker is the identity key: comparisons are case-insensitive, and the
// canonical stored form is uppercase. AvgCost, CurrentPrice, Shares and
// YearsHeld are the raw inputs; NominalReturnPct, RealReturnPct, CAGRPct
// and Status are derived and only valid immediately after a stats pass —
// any mutation of cost, price or years-held must be followed by
// recomputation. WeightPct is maintained by the owning service, not by
// the calculation core.
type Position struct {
	ID               string         `json:"id"`
	Ticker           string         `json:"ticker"`
	Name             string         `json:"name"`
	Sector           string         `json:"sector"`
	AvgCost          float64        `json:"avgCost"`
	CurrentPrice     float64        `json:"currentPrice"`
	Shares           float64        `json:"shares"`
	YearsHeld        float64        `json:"yearsHeld"`
	NominalReturnPct float64        `json:"nominalReturnPct"`
	RealReturnPct    float64        `json:"realReturnPct"`
	CAGRPct          float64        `json:"cagrPct"`
	Status           PositionStatus `json:"status"`
	WeightPct        float64        `json:"weightPct"`
	LastUpdated      string         `json:"lastUpdated,omitempty"`
}

// MarketValue returns the position's current market value (shares * price).
func (p Position) MarketValue() float64 {
	return p.Shares * p.CurrentPrice
}

// CostBasis returns the total invested capital (shares * average cost).
func (p Position) CostBasis() float64 {
	return p.Shares * p.AvgCost
}
