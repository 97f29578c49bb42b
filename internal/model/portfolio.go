package model

// PortfolioSummary represents the aggregate state of the position list.
// All monetary values are in the account currency; percentages are
// rounded to two decimal places.
type PortfolioSummary struct {
	TotalValue       float64 `json:"totalValue"`       // Current market value
	TotalCost        float64 `json:"totalCost"`        // Total cost basis
	TotalGainLoss    float64 `json:"totalGainLoss"`    // Unrealized gain/loss
	TotalGainLossPct float64 `json:"totalGainLossPct"` // Gain/loss as percent of cost
	PositionCount    int     `json:"positionCount"`
}
