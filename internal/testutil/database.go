package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations in internal/database.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Position table
		CREATE TABLE position (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			ticker VARCHAR(12) NOT NULL,
			name VARCHAR(100) NOT NULL DEFAULT '',
			sector VARCHAR(50) NOT NULL DEFAULT '',
			avg_cost REAL NOT NULL DEFAULT 0,
			current_price REAL NOT NULL DEFAULT 0,
			shares REAL NOT NULL DEFAULT 0,
			years_held REAL NOT NULL DEFAULT 0,
			nominal_return_pct REAL NOT NULL DEFAULT 0,
			real_return_pct REAL NOT NULL DEFAULT 0,
			cagr_pct REAL NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'Tracking Market',
			weight_pct REAL NOT NULL DEFAULT 0,
			last_updated VARCHAR(30) NOT NULL DEFAULT '',
			display_order INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX idx_position_ticker ON position (ticker COLLATE NOCASE);

		-- Settings table
		CREATE TABLE settings (
			id INTEGER NOT NULL PRIMARY KEY CHECK (id = 1),
			provider_key_encrypted TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP
		);
	`

	_, err := db.Exec(schema)
	return err
}
