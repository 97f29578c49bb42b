package perf_test

import (
	"testing"

	"github.com/jkoster/portfolio-performance-backend/internal/model"
	"github.com/jkoster/portfolio-performance-backend/internal/perf"
)

// TestMergeInto tests folding a single incoming lot into a list.
//
// WHY: Imports and repeated manual adds go through this path. The
// weighted averages decide the cost basis the user sees forever after,
// and a case-sensitivity slip would silently duplicate instruments.
func TestMergeInto(t *testing.T) {
	t.Run("appends when no ticker matches", func(t *testing.T) {
		list := []model.Position{{Ticker: "AAPL", Shares: 10, AvgCost: 100}}
		incoming := model.Position{Ticker: "MSFT", Shares: 5, AvgCost: 50}

		got := perf.MergeInto(list, incoming, zeroInflation())

		if len(got) != 2 {
			t.Fatalf("Expected 2 positions, got %d", len(got))
		}
		if got[1].Ticker != "MSFT" || got[1].Shares != 5 {
			t.Errorf("Expected incoming appended unchanged, got %+v", got[1])
		}
	})

	t.Run("combines shares and weights average cost by capital", func(t *testing.T) {
		list := []model.Position{{Ticker: "AAPL", Shares: 100, AvgCost: 50, CurrentPrice: 90, YearsHeld: 1}}
		incoming := model.Position{Ticker: "AAPL", Shares: 50, AvgCost: 80, CurrentPrice: 90, YearsHeld: 1}

		got := perf.MergeInto(list, incoming, zeroInflation())

		if len(got) != 1 {
			t.Fatalf("Expected 1 merged position, got %d", len(got))
		}
		if got[0].Shares != 150 {
			t.Errorf("Expected 150 shares, got %v", got[0].Shares)
		}
		// (100*50 + 50*80) / 150 = 60.
		if got[0].AvgCost != 60 {
			t.Errorf("Expected avg cost 60, got %v", got[0].AvgCost)
		}
	})

	t.Run("weights years held by invested capital", func(t *testing.T) {
		// $5k held 4 years plus $5k held 2 years averages to 3 years,
		// regardless of the share counts behind each lot.
		list := []model.Position{{Ticker: "VOO", Shares: 10, AvgCost: 500, CurrentPrice: 600, YearsHeld: 4}}
		incoming := model.Position{Ticker: "VOO", Shares: 50, AvgCost: 100, CurrentPrice: 600, YearsHeld: 2}

		got := perf.MergeInto(list, incoming, zeroInflation())

		if got[0].YearsHeld != 3.0 {
			t.Errorf("Expected capital-weighted 3.0 years, got %v", got[0].YearsHeld)
		}
	})

	t.Run("matches tickers case-insensitively and keeps existing casing", func(t *testing.T) {
		list := []model.Position{{Ticker: "AAPL", Shares: 10, AvgCost: 100, CurrentPrice: 120, YearsHeld: 1}}
		incoming := model.Position{Ticker: "aapl", Shares: 10, AvgCost: 100, CurrentPrice: 120, YearsHeld: 1}

		got := perf.MergeInto(list, incoming, zeroInflation())

		if len(got) != 1 {
			t.Fatalf("Expected single merged position, got %d", len(got))
		}
		if got[0].Ticker != "AAPL" {
			t.Errorf("Expected existing casing kept, got %q", got[0].Ticker)
		}
		if got[0].Shares != 20 {
			t.Errorf("Expected 20 shares, got %v", got[0].Shares)
		}
	})

	t.Run("recomputes statistics on the merged position", func(t *testing.T) {
		list := []model.Position{{Ticker: "AAPL", Shares: 100, AvgCost: 50, CurrentPrice: 90, YearsHeld: 2}}
		incoming := model.Position{Ticker: "AAPL", Shares: 50, AvgCost: 80, CurrentPrice: 90, YearsHeld: 2}

		got := perf.MergeInto(list, incoming, zeroInflation())

		// Cost 60 vs price 90: +50% nominal.
		if got[0].NominalReturnPct != 50.0 {
			t.Errorf("Expected nominal 50.0 on merged position, got %v", got[0].NominalReturnPct)
		}
		if got[0].Status != model.StatusBeatingInflation {
			t.Errorf("Expected recomputed status, got %q", got[0].Status)
		}
	})

	t.Run("keeps the merged position at the existing index", func(t *testing.T) {
		list := []model.Position{
			{Ticker: "MSFT", Shares: 1, AvgCost: 10, CurrentPrice: 12, YearsHeld: 1},
			{Ticker: "AAPL", Shares: 10, AvgCost: 100, CurrentPrice: 120, YearsHeld: 1},
			{Ticker: "VOO", Shares: 2, AvgCost: 400, CurrentPrice: 450, YearsHeld: 1},
		}
		incoming := model.Position{Ticker: "AAPL", Shares: 10, AvgCost: 100, CurrentPrice: 120, YearsHeld: 1}

		got := perf.MergeInto(list, incoming, zeroInflation())

		if len(got) != 3 {
			t.Fatalf("Expected 3 positions, got %d", len(got))
		}
		if got[1].Ticker != "AAPL" || got[1].Shares != 20 {
			t.Errorf("Expected merge in place at index 1, got %+v", got[1])
		}
	})

	t.Run("prefers incoming display fields when present", func(t *testing.T) {
		list := []model.Position{{Ticker: "AAPL", Name: "Apple", Sector: "Tech", Shares: 10, AvgCost: 100, CurrentPrice: 110, YearsHeld: 1, LastUpdated: "2026-01-01"}}
		incoming := model.Position{Ticker: "AAPL", Name: "Apple Inc.", Shares: 10, AvgCost: 100, CurrentPrice: 120, YearsHeld: 1, LastUpdated: "2026-08-25"}

		got := perf.MergeInto(list, incoming, zeroInflation())

		if got[0].Name != "Apple Inc." {
			t.Errorf("Expected incoming name, got %q", got[0].Name)
		}
		// Incoming sector is empty; existing survives.
		if got[0].Sector != "Tech" {
			t.Errorf("Expected existing sector kept, got %q", got[0].Sector)
		}
		if got[0].CurrentPrice != 120 {
			t.Errorf("Expected incoming price, got %v", got[0].CurrentPrice)
		}
		if got[0].LastUpdated != "2026-08-25" {
			t.Errorf("Expected incoming timestamp, got %q", got[0].LastUpdated)
		}
	})

	t.Run("does not mutate the input list", func(t *testing.T) {
		list := []model.Position{{Ticker: "AAPL", Shares: 10, AvgCost: 100, CurrentPrice: 120, YearsHeld: 1}}
		incoming := model.Position{Ticker: "AAPL", Shares: 10, AvgCost: 200, CurrentPrice: 120, YearsHeld: 1}

		perf.MergeInto(list, incoming, zeroInflation())

		if list[0].Shares != 10 || list[0].AvgCost != 100 {
			t.Errorf("Input list mutated: %+v", list[0])
		}
	})

	t.Run("zeroes economics when total shares reach zero", func(t *testing.T) {
		list := []model.Position{{Ticker: "GE", Shares: 0, AvgCost: 0, CurrentPrice: 100, YearsHeld: 5}}
		incoming := model.Position{Ticker: "GE", Name: "General Electric", Shares: 0, AvgCost: 0, CurrentPrice: 110, YearsHeld: 2}

		got := perf.MergeInto(list, incoming, zeroInflation())

		if got[0].Shares != 0 || got[0].AvgCost != 0 {
			t.Errorf("Expected zeroed economics, got %+v", got[0])
		}
		if got[0].YearsHeld != 5 {
			t.Errorf("Expected max years held, got %v", got[0].YearsHeld)
		}
		if got[0].Name != "General Electric" {
			t.Errorf("Expected incoming display data, got %q", got[0].Name)
		}
	})
}

// TestMergeAll tests folding a batch of incoming lots in order.
//
// WHY: CSV imports arrive as a batch. Each lot must see the list state
// left by the previous one, so duplicate tickers within a single file
// collapse into one position.
func TestMergeAll(t *testing.T) {
	t.Run("collapses duplicate tickers within the batch", func(t *testing.T) {
		incoming := []model.Position{
			{Ticker: "AAPL", Shares: 10, AvgCost: 100, CurrentPrice: 120, YearsHeld: 1},
			{Ticker: "aapl", Shares: 10, AvgCost: 200, CurrentPrice: 120, YearsHeld: 1},
		}

		got := perf.MergeAll(nil, incoming, zeroInflation())

		if len(got) != 1 {
			t.Fatalf("Expected 1 position, got %d", len(got))
		}
		if got[0].Shares != 20 || got[0].AvgCost != 150 {
			t.Errorf("Expected 20 shares at avg 150, got %+v", got[0])
		}
	})

	t.Run("preserves first-seen order for new tickers", func(t *testing.T) {
		current := []model.Position{{Ticker: "MSFT", Shares: 1, AvgCost: 10, CurrentPrice: 12, YearsHeld: 1}}
		incoming := []model.Position{
			{Ticker: "VOO", Shares: 2, AvgCost: 400, CurrentPrice: 420, YearsHeld: 1},
			{Ticker: "AAPL", Shares: 3, AvgCost: 100, CurrentPrice: 110, YearsHeld: 1},
		}

		got := perf.MergeAll(current, incoming, zeroInflation())

		want := []string{"MSFT", "VOO", "AAPL"}
		if len(got) != len(want) {
			t.Fatalf("Expected %d positions, got %d", len(want), len(got))
		}
		for i, ticker := range want {
			if got[i].Ticker != ticker {
				t.Errorf("Expected %s at index %d, got %s", ticker, i, got[i].Ticker)
			}
		}
	})
}
