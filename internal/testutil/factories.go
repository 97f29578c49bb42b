package testutil

import (
	"database/sql"
	"testing"

	"github.com/jkoster/portfolio-performance-backend/internal/model"
)

// PositionBuilder provides a fluent interface for creating test positions.
//
// Example usage:
//
//	// Simple creation with defaults
//	position := testutil.NewPosition().Build(t, db)
//
//	// Customized position
//	position := testutil.NewPosition().
//	    WithTicker("AAPL").
//	    WithShares(100).
//	    WithAvgCost(150).
//	    WithCurrentPrice(210).
//	    Build(t, db)
type PositionBuilder struct {
	ID           string
	Ticker       string
	Name         string
	Sector       string
	AvgCost      float64
	CurrentPrice float64
	Shares       float64
	YearsHeld    float64
	Status       model.PositionStatus
	LastUpdated  string
}

// NewPosition creates a PositionBuilder with sensible defaults.
func NewPosition() *PositionBuilder {
	return &PositionBuilder{
		ID:           MakeID(),
		Ticker:       MakeTicker("TST"),
		Name:         "Test Position",
		Sector:       "Technology",
		AvgCost:      100.0,
		CurrentPrice: 120.0,
		Shares:       10.0,
		YearsHeld:    2.0,
		Status:       model.StatusTrackingMarket,
	}
}

// WithID sets a custom ID.
func (b *PositionBuilder) WithID(id string) *PositionBuilder {
	b.ID = id
	return b
}

// WithTicker sets a custom ticker.
func (b *PositionBuilder) WithTicker(ticker string) *PositionBuilder {
	b.Ticker = ticker
	return b
}

// WithName sets a custom name.
func (b *PositionBuilder) WithName(name string) *PositionBuilder {
	b.Name = name
	return b
}

// WithSector sets a custom sector.
func (b *PositionBuilder) WithSector(sector string) *PositionBuilder {
	b.Sector = sector
	return b
}

// WithAvgCost sets the average cost per share.
func (b *PositionBuilder) WithAvgCost(cost float64) *PositionBuilder {
	b.AvgCost = cost
	return b
}

// WithCurrentPrice sets the current price per share.
func (b *PositionBuilder) WithCurrentPrice(price float64) *PositionBuilder {
	b.CurrentPrice = price
	return b
}

// WithShares sets the share count.
func (b *PositionBuilder) WithShares(shares float64) *PositionBuilder {
	b.Shares = shares
	return b
}

// WithYearsHeld sets the holding period in years.
func (b *PositionBuilder) WithYearsHeld(years float64) *PositionBuilder {
	b.YearsHeld = years
	return b
}

// WithLastUpdated sets the quote timestamp.
func (b *PositionBuilder) WithLastUpdated(ts string) *PositionBuilder {
	b.LastUpdated = ts
	return b
}

// Build creates the position in the database and returns it. Derived
// statistics are stored as zero; list-level recomputation in the
// services overwrites them anyway.
func (b *PositionBuilder) Build(t *testing.T, db *sql.DB) model.Position {
	t.Helper()

	query := `
		INSERT INTO position (id, ticker, name, sector, avg_cost, current_price, shares, years_held,
		                      nominal_return_pct, real_return_pct, cagr_pct, status, weight_pct,
		                      last_updated, display_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 0, 0, ?, 0, ?,
		    (SELECT COALESCE(MAX(display_order), 0) + 1 FROM position))
	`

	_, err := db.Exec(query,
		b.ID, b.Ticker, b.Name, b.Sector, b.AvgCost, b.CurrentPrice, b.Shares, b.YearsHeld,
		string(b.Status), b.LastUpdated)
	if err != nil {
		t.Fatalf("Failed to create test position: %v", err)
	}

	return model.Position{
		ID:           b.ID,
		Ticker:       b.Ticker,
		Name:         b.Name,
		Sector:       b.Sector,
		AvgCost:      b.AvgCost,
		CurrentPrice: b.CurrentPrice,
		Shares:       b.Shares,
		YearsHeld:    b.YearsHeld,
		Status:       b.Status,
		LastUpdated:  b.LastUpdated,
	}
}

// Convenience functions

// CreatePosition creates a position with the given ticker and default values.
//
// Example usage:
//
//	position := testutil.CreatePosition(t, db, "AAPL")
func CreatePosition(t *testing.T, db *sql.DB, ticker string) model.Position {
	t.Helper()
	return NewPosition().WithTicker(ticker).Build(t, db)
}

// CreatePositions creates multiple positions with unique tickers.
func CreatePositions(t *testing.T, db *sql.DB, count int) []model.Position {
	t.Helper()

	positions := make([]model.Position, count)
	for i := 0; i < count; i++ {
		positions[i] = NewPosition().Build(t, db)
	}
	return positions
}
