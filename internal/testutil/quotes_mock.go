package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jkoster/portfolio-performance-backend/internal/quotes"
)

// MockQuoteClient is a mock implementation of quotes.Client for testing.
// It returns predefined prices instead of making actual API calls.
// Safe for concurrent use; price refreshes fan out across goroutines.
type MockQuoteClient struct {
	mu sync.Mutex

	// Prices maps ticker symbols to the price the mock returns.
	Prices map[string]float64
	// Err, when set, is returned for every lookup.
	Err error
	// APIKeys records the apiKey passed on each call, in call order.
	APIKeys []string
	// CallCount tracks how many times LatestQuote was called.
	CallCount int
}

// NewMockQuoteClient creates a mock quote client with no prices configured.
func NewMockQuoteClient() *MockQuoteClient {
	return &MockQuoteClient{Prices: map[string]float64{}}
}

// WithPrice configures the price returned for a symbol.
func (m *MockQuoteClient) WithPrice(symbol string, price float64) *MockQuoteClient {
	m.Prices[symbol] = price
	return m
}

// WithError configures the mock to fail every lookup with err.
func (m *MockQuoteClient) WithError(err error) *MockQuoteClient {
	m.Err = err
	return m
}

// LatestQuote returns the configured price for the symbol, or an error
// when none is configured.
func (m *MockQuoteClient) LatestQuote(_ context.Context, symbol, apiKey string) (quotes.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.APIKeys = append(m.APIKeys, apiKey)

	if m.Err != nil {
		return quotes.Quote{}, m.Err
	}

	price, ok := m.Prices[symbol]
	if !ok {
		return quotes.Quote{}, fmt.Errorf("no price data returned for %s", symbol)
	}

	return quotes.Quote{
		Symbol:   symbol,
		Name:     symbol + " Inc.",
		Currency: "USD",
		Price:    price,
		AsOf:     time.Now().UTC(),
	}, nil
}
