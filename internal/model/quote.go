package model

// QuoteRefreshResult reports the outcome of a bulk price refresh.
// Success is true if at least one ticker was updated.
type QuoteRefreshResult struct {
	Success      bool          `json:"success"`
	Updated      []QuoteUpdate `json:"updated"`
	Errors       []QuoteError  `json:"errors"`
	TotalUpdated int           `json:"totalUpdated"`
	TotalErrors  int           `json:"totalErrors"`
}

// QuoteUpdate describes one ticker whose price was refreshed.
type QuoteUpdate struct {
	Ticker string  `json:"ticker"`
	Price  float64 `json:"price"`
	AsOf   string  `json:"asOf"`
}

// QuoteError describes one ticker that failed to refresh.
type QuoteError struct {
	Ticker string `json:"ticker"`
	Error  string `json:"error"`
}
