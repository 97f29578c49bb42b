package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/jkoster/portfolio-performance-backend/internal/quotes"
	"github.com/jkoster/portfolio-performance-backend/internal/refdata"
	"github.com/jkoster/portfolio-performance-backend/internal/repository"
	"github.com/jkoster/portfolio-performance-backend/internal/service"
)

func NewTestPositionService(t *testing.T, db *sql.DB) *service.PositionService {
	t.Helper()

	positionRepo := repository.NewPositionRepository(db)

	return service.NewPositionService(
		positionRepo,
		refdata.Inflation(),
	)
}

func NewTestChartService(t *testing.T, db *sql.DB) *service.ChartService {
	t.Helper()

	positionRepo := repository.NewPositionRepository(db)

	return service.NewChartService(positionRepo)
}

func NewTestImportService(t *testing.T, db *sql.DB) *service.ImportService {
	t.Helper()

	return service.NewImportService(NewTestPositionService(t, db))
}

// TestFernetKey is a fixed fernet key shared by every test service, so
// settings written by one service instance decrypt in another.
const TestFernetKey = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="

func NewTestSettingsService(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	settingsRepo, err := repository.NewSettingsRepository(db, TestFernetKey)
	if err != nil {
		t.Fatalf("Failed to create settings repository: %v", err)
	}

	return service.NewSettingsService(settingsRepo)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestQuoteService(t *testing.T, db *sql.DB, client quotes.Client) *service.QuoteService {
	t.Helper()

	return service.NewQuoteService(
		client,
		NewTestPositionService(t, db),
		NewTestSettingsService(t, db),
	)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeTicker generates a unique ticker symbol for testing.
//
// Example usage:
//
//	ticker := testutil.MakeTicker("AAPL")
//	// Returns: "AAPL1A2B"
func MakeTicker(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
