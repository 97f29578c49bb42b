package quotes

import "time"

// Response represents the raw JSON response structure from the Yahoo
// Finance chart API. The structure maps directly onto the provider's
// format: one result object carrying symbol metadata, Unix timestamps,
// and parallel arrays of daily price indicators.
type Response struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency     string `json:"currency"`
				Symbol       string `json:"symbol"`
				ExchangeName string `json:"exchangeName"`
				LongName     string `json:"longName"`
				ShortName    string `json:"shortName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}

// Quote is the application's internal representation of one symbol's
// latest available daily close.
type Quote struct {
	Symbol   string    `json:"symbol"`
	Name     string    `json:"name"`
	Currency string    `json:"currency"`
	Price    float64   `json:"price"`
	AsOf     time.Time `json:"asOf"`
}
