package service_test

import (
	"errors"
	"testing"

	"github.com/jkoster/portfolio-performance-backend/internal/api/request"
	"github.com/jkoster/portfolio-performance-backend/internal/apperrors"
	"github.com/jkoster/portfolio-performance-backend/internal/model"
	"github.com/jkoster/portfolio-performance-backend/internal/testutil"
)

// TestPositionService_CreatePosition tests adding lots to the portfolio.
//
// WHY: Create is the main entry point for portfolio data. It must
// canonicalize tickers, derive statistics before persisting, merge
// duplicate instruments instead of duplicating rows, and keep the
// portfolio weights consistent.
func TestPositionService_CreatePosition(t *testing.T) {
	t.Run("creates a position with derived statistics", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		positions, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "aapl ", Name: "Apple", Sector: "Technology",
			AvgCost: 100, CurrentPrice: 200, Shares: 10, YearsHeld: 10,
		})

		// Assert
		if err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}
		if len(positions) != 1 {
			t.Fatalf("Expected 1 position, got %d", len(positions))
		}

		p := positions[0]
		if p.Ticker != "AAPL" {
			t.Errorf("Expected canonical ticker AAPL, got %q", p.Ticker)
		}
		if p.ID == "" {
			t.Error("Expected generated ID")
		}
		if p.NominalReturnPct != 100.0 {
			t.Errorf("Expected nominal 100.0, got %v", p.NominalReturnPct)
		}
		if p.WeightPct != 100.0 {
			t.Errorf("Expected sole position weight 100.0, got %v", p.WeightPct)
		}
	})

	t.Run("merges a duplicate ticker instead of adding a row", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		if _, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "AAPL", AvgCost: 50, CurrentPrice: 90, Shares: 100, YearsHeld: 2,
		}); err != nil {
			t.Fatalf("First create failed: %v", err)
		}

		// Execute: same instrument, different casing and cost basis.
		positions, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "aapl", AvgCost: 80, CurrentPrice: 90, Shares: 50, YearsHeld: 2,
		})

		// Assert
		if err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}
		if len(positions) != 1 {
			t.Fatalf("Expected merged single position, got %d", len(positions))
		}
		if positions[0].Shares != 150 {
			t.Errorf("Expected 150 shares, got %v", positions[0].Shares)
		}
		if positions[0].AvgCost != 60 {
			t.Errorf("Expected capital-weighted avg cost 60, got %v", positions[0].AvgCost)
		}

		// The merge must be persisted, not just returned.
		stored, err := svc.GetAllPositions()
		if err != nil {
			t.Fatalf("GetAllPositions() returned unexpected error: %v", err)
		}
		if len(stored) != 1 {
			t.Errorf("Expected 1 stored position, got %d", len(stored))
		}
	})

	t.Run("distributes weights across positions", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		if _, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "AAPL", AvgCost: 100, CurrentPrice: 100, Shares: 3, YearsHeld: 1,
		}); err != nil {
			t.Fatalf("First create failed: %v", err)
		}

		// Execute
		positions, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "MSFT", AvgCost: 100, CurrentPrice: 100, Shares: 1, YearsHeld: 1,
		})

		// Assert: market values 300 and 100.
		if err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}
		if positions[0].WeightPct != 75.0 || positions[1].WeightPct != 25.0 {
			t.Errorf("Expected weights 75/25, got %v/%v", positions[0].WeightPct, positions[1].WeightPct)
		}
	})
}

// TestPositionService_UpdatePosition tests partial updates.
//
// WHY: Updates touch the economics the derived statistics hang off.
// Only supplied fields may change, and stale stats or weights after an
// update would contradict what the list endpoint returns.
func TestPositionService_UpdatePosition(t *testing.T) {
	t.Run("applies only the supplied fields and recomputes stats", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		created, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "AAPL", Name: "Apple", Sector: "Technology",
			AvgCost: 100, CurrentPrice: 100, Shares: 10, YearsHeld: 1,
		})
		if err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}

		// Execute
		newPrice := 150.0
		updated, err := svc.UpdatePosition(created[0].ID, request.UpdatePositionRequest{
			CurrentPrice: &newPrice,
		})

		// Assert
		if err != nil {
			t.Fatalf("UpdatePosition() returned unexpected error: %v", err)
		}
		if updated.CurrentPrice != 150 {
			t.Errorf("Expected price 150, got %v", updated.CurrentPrice)
		}
		if updated.NominalReturnPct != 50.0 {
			t.Errorf("Expected recomputed nominal 50.0, got %v", updated.NominalReturnPct)
		}
		if updated.Name != "Apple" || updated.Sector != "Technology" || updated.Shares != 10 {
			t.Errorf("Unsupplied fields changed: %+v", updated)
		}
	})

	t.Run("returns not-found for an unknown ID", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		_, err := svc.UpdatePosition(testutil.MakeID(), request.UpdatePositionRequest{})

		// Assert
		if !errors.Is(err, apperrors.ErrPositionNotFound) {
			t.Errorf("Expected ErrPositionNotFound, got %v", err)
		}
	})
}

// TestPositionService_DeletePosition tests removal and reweighing.
//
// WHY: Deleting a position changes every remaining position's share of
// the portfolio; forgetting the reweigh leaves weights summing short.
func TestPositionService_DeletePosition(t *testing.T) {
	t.Run("deletes and rebalances the remaining weights", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		created, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "AAPL", AvgCost: 100, CurrentPrice: 100, Shares: 3, YearsHeld: 1,
		})
		if err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}
		if _, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "MSFT", AvgCost: 100, CurrentPrice: 100, Shares: 1, YearsHeld: 1,
		}); err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}

		// Execute
		if err := svc.DeletePosition(created[0].ID); err != nil {
			t.Fatalf("DeletePosition() returned unexpected error: %v", err)
		}

		// Assert
		remaining, err := svc.GetAllPositions()
		if err != nil {
			t.Fatalf("GetAllPositions() returned unexpected error: %v", err)
		}
		if len(remaining) != 1 {
			t.Fatalf("Expected 1 remaining position, got %d", len(remaining))
		}
		if remaining[0].Ticker != "MSFT" || remaining[0].WeightPct != 100.0 {
			t.Errorf("Expected MSFT at weight 100, got %+v", remaining[0])
		}
	})

	t.Run("returns not-found for an unknown ID", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		err := svc.DeletePosition(testutil.MakeID())

		// Assert
		if !errors.Is(err, apperrors.ErrPositionNotFound) {
			t.Errorf("Expected ErrPositionNotFound, got %v", err)
		}
	})
}

// TestPositionService_ImportPositions tests bulk merge imports.
//
// WHY: Imports are the batch variant of create: duplicate tickers
// within the batch and against the existing portfolio must collapse,
// and every resulting position needs an ID and derived statistics.
func TestPositionService_ImportPositions(t *testing.T) {
	t.Run("rejects an empty batch", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		_, err := svc.ImportPositions(nil)

		// Assert
		if !errors.Is(err, apperrors.ErrEmptyImport) {
			t.Errorf("Expected ErrEmptyImport, got %v", err)
		}
	})

	t.Run("folds the batch into the existing portfolio", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		if _, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "AAPL", AvgCost: 100, CurrentPrice: 120, Shares: 10, YearsHeld: 2,
		}); err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}

		// Execute: one duplicate (different casing), one new.
		positions, err := svc.ImportPositions([]model.Position{
			{Ticker: "aapl", Shares: 10, AvgCost: 100, CurrentPrice: 120, YearsHeld: 2},
			{Ticker: "voo", Shares: 2, AvgCost: 400, CurrentPrice: 450, YearsHeld: 1},
		})

		// Assert
		if err != nil {
			t.Fatalf("ImportPositions() returned unexpected error: %v", err)
		}
		if len(positions) != 2 {
			t.Fatalf("Expected 2 positions, got %d", len(positions))
		}
		if positions[0].Ticker != "AAPL" || positions[0].Shares != 20 {
			t.Errorf("Expected merged AAPL with 20 shares, got %+v", positions[0])
		}
		if positions[1].Ticker != "VOO" {
			t.Errorf("Expected canonicalized VOO appended, got %q", positions[1].Ticker)
		}
		if positions[1].ID == "" {
			t.Error("Expected generated ID on imported position")
		}
		if positions[1].NominalReturnPct != 12.5 {
			t.Errorf("Expected derived nominal 12.5 on imported position, got %v", positions[1].NominalReturnPct)
		}
	})
}

// TestPositionService_ApplyQuotes tests writing refreshed prices through.
//
// WHY: Quote refreshes must only touch tickers they actually fetched,
// recompute statistics from the new price, and never write a bogus
// non-positive price into a position.
func TestPositionService_ApplyQuotes(t *testing.T) {
	t.Run("updates matching tickers and recomputes stats", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		if _, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "AAPL", AvgCost: 100, CurrentPrice: 100, Shares: 10, YearsHeld: 1,
		}); err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}
		if _, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "MSFT", AvgCost: 100, CurrentPrice: 100, Shares: 10, YearsHeld: 1,
		}); err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}

		// Execute
		positions, err := svc.ApplyQuotes(map[string]model.QuoteUpdate{
			"AAPL": {Ticker: "AAPL", Price: 150, AsOf: "2026-08-25T21:00:00Z"},
		})

		// Assert
		if err != nil {
			t.Fatalf("ApplyQuotes() returned unexpected error: %v", err)
		}
		if positions[0].CurrentPrice != 150 || positions[0].NominalReturnPct != 50.0 {
			t.Errorf("Expected refreshed AAPL, got %+v", positions[0])
		}
		if positions[0].LastUpdated != "2026-08-25T21:00:00Z" {
			t.Errorf("Expected quote timestamp recorded, got %q", positions[0].LastUpdated)
		}
		if positions[1].CurrentPrice != 100 {
			t.Errorf("Expected MSFT untouched, got %+v", positions[1])
		}
	})

	t.Run("ignores non-positive quoted prices", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		if _, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "AAPL", AvgCost: 100, CurrentPrice: 100, Shares: 10, YearsHeld: 1,
		}); err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}

		// Execute
		positions, err := svc.ApplyQuotes(map[string]model.QuoteUpdate{
			"AAPL": {Ticker: "AAPL", Price: 0},
		})

		// Assert
		if err != nil {
			t.Fatalf("ApplyQuotes() returned unexpected error: %v", err)
		}
		if positions[0].CurrentPrice != 100 {
			t.Errorf("Expected price untouched, got %v", positions[0].CurrentPrice)
		}
	})
}

// TestPositionService_GetSummary tests the aggregate totals.
//
// WHY: The summary card is computed from raw cost and market value,
// not from the rounded per-position percentages; the division-by-zero
// guard for an empty portfolio lives here.
func TestPositionService_GetSummary(t *testing.T) {
	t.Run("aggregates value, cost and gain", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		if _, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "AAPL", AvgCost: 100, CurrentPrice: 150, Shares: 10, YearsHeld: 1,
		}); err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}
		if _, err := svc.CreatePosition(request.CreatePositionRequest{
			Ticker: "MSFT", AvgCost: 200, CurrentPrice: 100, Shares: 5, YearsHeld: 1,
		}); err != nil {
			t.Fatalf("CreatePosition() returned unexpected error: %v", err)
		}

		// Execute
		summary, err := svc.GetSummary()

		// Assert: value 1500+500, cost 1000+1000.
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.TotalValue != 2000 {
			t.Errorf("Expected total value 2000, got %v", summary.TotalValue)
		}
		if summary.TotalCost != 2000 {
			t.Errorf("Expected total cost 2000, got %v", summary.TotalCost)
		}
		if summary.TotalGainLoss != 0 || summary.TotalGainLossPct != 0 {
			t.Errorf("Expected flat gain, got %+v", summary)
		}
		if summary.PositionCount != 2 {
			t.Errorf("Expected 2 positions, got %d", summary.PositionCount)
		}
	})

	t.Run("returns zeros for an empty portfolio", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		summary, err := svc.GetSummary()

		// Assert
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.TotalValue != 0 || summary.TotalGainLossPct != 0 || summary.PositionCount != 0 {
			t.Errorf("Expected zeroed summary, got %+v", summary)
		}
	})
}

// TestPositionService_DatabaseErrors tests error propagation.
//
// WHY: The service must surface storage failures instead of masking
// them as an empty portfolio.
func TestPositionService_DatabaseErrors(t *testing.T) {
	t.Run("propagates a closed database connection", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)
		db.Close()

		// Execute
		_, err := svc.GetAllPositions()

		// Assert
		if err == nil {
			t.Error("Expected error when database is closed, got nil")
		}
	})
}
