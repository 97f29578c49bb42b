package request

// CreatePositionRequest represents the request body for adding a lot.
// If the ticker already exists in the portfolio (case-insensitive),
// the lot is merged into the existing position.
type CreatePositionRequest struct {
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	Sector       string  `json:"sector"`
	AvgCost      float64 `json:"avgCost"`
	CurrentPrice float64 `json:"currentPrice"`
	Shares       float64 `json:"shares"`
	YearsHeld    float64 `json:"yearsHeld"`
}

// UpdatePositionRequest represents a partial update of a position.
// Only non-nil fields are applied; derived statistics are recomputed
// after any change to cost, price, shares, or years held.
type UpdatePositionRequest struct {
	Name         *string  `json:"name,omitempty"`
	Sector       *string  `json:"sector,omitempty"`
	AvgCost      *float64 `json:"avgCost,omitempty"`
	CurrentPrice *float64 `json:"currentPrice,omitempty"`
	Shares       *float64 `json:"shares,omitempty"`
	YearsHeld    *float64 `json:"yearsHeld,omitempty"`
}
