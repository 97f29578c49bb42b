// Package quotes fetches current market prices for ticker symbols from
// the Yahoo Finance chart API.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client defines the interface for fetching current prices.
// This interface enables dependency injection and testing with mock
// implementations. apiKey may be empty; the public endpoint works
// without one, paid mirrors require it.
type Client interface {
	LatestQuote(ctx context.Context, symbol, apiKey string) (Quote, error)
}

// FinanceClient is the production Client backed by Yahoo Finance.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewFinanceClient creates a new quote client with default HTTP settings.
func NewFinanceClient() *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://query1.finance.yahoo.com",
	}
}

// LatestQuote fetches the most recent daily close for a symbol.
// It queries the last five trading days (range=5d) and takes the final
// close, so weekends and market holidays still yield a price.
func (c *FinanceClient) LatestQuote(ctx context.Context, symbol, apiKey string) (Quote, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", c.baseURL, symbol)

	response, err := c.query(ctx, url, apiKey)
	if err != nil {
		return Quote{}, err
	}

	return ParseLatest(response)
}

// ParseLatest extracts the latest close from a raw chart response.
// The last entry of the close array can be null intraday on some
// exchanges; the parser walks backward to the most recent non-zero
// close.
func ParseLatest(response Response) (Quote, error) {
	if len(response.Chart.Result) == 0 {
		return Quote{}, fmt.Errorf("no results returned")
	}

	result := response.Chart.Result[0]

	if len(result.Timestamp) == 0 {
		return Quote{}, fmt.Errorf("no price data returned for %s", result.Meta.Symbol)
	}
	if len(result.Indicators.Quote) == 0 || len(result.Indicators.Quote[0].Close) == 0 {
		return Quote{}, fmt.Errorf("no close prices returned for %s", result.Meta.Symbol)
	}
	if len(result.Indicators.Quote[0].Close) != len(result.Timestamp) {
		return Quote{}, fmt.Errorf("mismatched data lengths for %s", result.Meta.Symbol)
	}

	closes := result.Indicators.Quote[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] > 0 {
			name := result.Meta.LongName
			if name == "" {
				name = result.Meta.ShortName
			}
			return Quote{
				Symbol:   result.Meta.Symbol,
				Name:     name,
				Currency: result.Meta.Currency,
				Price:    closes[i],
				AsOf:     time.Unix(result.Timestamp[i], 0).UTC(),
			}, nil
		}
	}

	return Quote{}, fmt.Errorf("no usable close price for %s", result.Meta.Symbol)
}

// query executes an HTTP request against the provider and decodes the
// chart response. A browser User-Agent is required; the API rejects
// default Go clients.
func (c *FinanceClient) query(ctx context.Context, url, apiKey string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")
	if apiKey != "" {
		req.Header.Set("X-Api-Key", apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, fmt.Errorf("failed to parse provider response: %w", err)
	}

	if response.Chart.Error != nil {
		return Response{}, fmt.Errorf("provider error: %s", *response.Chart.Error)
	}

	return response, nil
}
