package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jkoster/portfolio-performance-backend/internal/apperrors"
	"github.com/jkoster/portfolio-performance-backend/internal/model"
	"github.com/jkoster/portfolio-performance-backend/internal/quotes"
)

// quoteCacheTTL is the freshness window for fetched quotes. Repeated
// refreshes inside the window reuse the cached price instead of
// hitting the provider again.
const quoteCacheTTL = 15 * time.Minute

// maxConcurrentQuoteFetches bounds parallel provider requests.
const maxConcurrentQuoteFetches = 4

// QuoteService refreshes current prices for every held ticker. It owns
// the application-level quote cache; the calculation core never caches.
type QuoteService struct {
	client          quotes.Client
	positionService *PositionService
	settingsService *SettingsService

	mu    sync.Mutex
	cache map[string]cachedQuote
	now   func() time.Time
}

type cachedQuote struct {
	quote     quotes.Quote
	fetchedAt time.Time
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(client quotes.Client, positionService *PositionService, settingsService *SettingsService) *QuoteService {
	return &QuoteService{
		client:          client,
		positionService: positionService,
		settingsService: settingsService,
		cache:           map[string]cachedQuote{},
		now:             time.Now,
	}
}

// RefreshPrices fetches the latest quote for every distinct held ticker
// (bounded concurrency), writes the new prices through the position
// service, and reports per-ticker outcomes. A single failing ticker
// does not abort the refresh.
func (s *QuoteService) RefreshPrices(ctx context.Context) (model.QuoteRefreshResult, error) {
	positions, err := s.positionService.GetAllPositions()
	if err != nil {
		return model.QuoteRefreshResult{}, err
	}

	tickers := distinctTickers(positions)
	if len(tickers) == 0 {
		return model.QuoteRefreshResult{Success: false}, nil
	}

	apiKey := s.providerKey()

	var mu sync.Mutex
	fetched := map[string]model.QuoteUpdate{}
	var quoteErrors []model.QuoteError

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQuoteFetches)

	for _, ticker := range tickers {
		ticker := ticker
		g.Go(func() error {
			quote, err := s.lookup(ctx, ticker, apiKey)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				quoteErrors = append(quoteErrors, model.QuoteError{
					Ticker: ticker,
					Error:  err.Error(),
				})
				return nil
			}
			fetched[ticker] = model.QuoteUpdate{
				Ticker: ticker,
				Price:  quote.Price,
				AsOf:   quote.AsOf.Format(time.RFC3339),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return model.QuoteRefreshResult{}, err
	}

	if len(fetched) > 0 {
		if _, err := s.positionService.ApplyQuotes(fetched); err != nil {
			return model.QuoteRefreshResult{}, err
		}
	}

	updated := make([]model.QuoteUpdate, 0, len(fetched))
	for _, u := range fetched {
		updated = append(updated, u)
	}
	sort.Slice(updated, func(i, j int) bool { return updated[i].Ticker < updated[j].Ticker })
	sort.Slice(quoteErrors, func(i, j int) bool { return quoteErrors[i].Ticker < quoteErrors[j].Ticker })

	return model.QuoteRefreshResult{
		Success:      len(updated) > 0,
		Updated:      updated,
		Errors:       quoteErrors,
		TotalUpdated: len(updated),
		TotalErrors:  len(quoteErrors),
	}, nil
}

// RunScheduledRefresh is the cron entry point: it refreshes prices with
// a bounded timeout and logs the outcome instead of returning it.
func (s *QuoteService) RunScheduledRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := s.RefreshPrices(ctx)
	if err != nil {
		log.Printf("Scheduled quote refresh failed: %v", err)
		return
	}
	log.Printf("Scheduled quote refresh: %d updated, %d errors", result.TotalUpdated, result.TotalErrors)
}

// providerKey returns the configured provider API key, or empty when
// none is stored (the public endpoint needs none).
func (s *QuoteService) providerKey() string {
	key, err := s.settingsService.GetProviderKey()
	if err != nil {
		if !errors.Is(err, apperrors.ErrProviderKeyNotFound) {
			log.Printf("Failed to load provider key, continuing without: %v", err)
		}
		return ""
	}
	return key.Key
}

// lookup returns a quote for the ticker, from cache when fresh.
func (s *QuoteService) lookup(ctx context.Context, ticker, apiKey string) (quotes.Quote, error) {
	s.mu.Lock()
	if cached, ok := s.cache[ticker]; ok && s.now().Sub(cached.fetchedAt) < quoteCacheTTL {
		s.mu.Unlock()
		return cached.quote, nil
	}
	s.mu.Unlock()

	quote, err := s.client.LatestQuote(ctx, ticker, apiKey)
	if err != nil {
		return quotes.Quote{}, err
	}
	if quote.Price <= 0 {
		return quotes.Quote{}, apperrors.ErrQuoteUnavailable
	}

	s.mu.Lock()
	s.cache[ticker] = cachedQuote{quote: quote, fetchedAt: s.now()}
	s.mu.Unlock()

	return quote, nil
}

// distinctTickers returns the unique upper-case tickers of the list,
// in first-seen order.
func distinctTickers(positions []model.Position) []string {
	seen := map[string]bool{}
	tickers := []string{}
	for _, p := range positions {
		ticker := strings.ToUpper(strings.TrimSpace(p.Ticker))
		if ticker == "" || seen[ticker] {
			continue
		}
		seen[ticker] = true
		tickers = append(tickers, ticker)
	}
	return tickers
}
