package service_test

import (
	"testing"

	"github.com/jkoster/portfolio-performance-backend/internal/testutil"
)

// TestSystemService tests health and version reporting.
//
// WHY: The health endpoint is what deployment probes hit; it must track
// the real database connection state rather than always reporting OK.
func TestSystemService(t *testing.T) {
	t.Run("reports healthy with a live database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		if err := svc.CheckHealth(); err != nil {
			t.Errorf("CheckHealth() returned unexpected error: %v", err)
		}
	})

	t.Run("reports unhealthy when the database is gone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)
		db.Close()

		if err := svc.CheckHealth(); err == nil {
			t.Error("Expected error with a closed database, got nil")
		}
	})

	t.Run("reports version and supported features", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		info := svc.CheckVersion()

		if info.AppVersion == "" {
			t.Error("Expected app version")
		}
		if !info.Features["csvImport"] || !info.Features["quoteRefresh"] {
			t.Errorf("Expected feature flags set, got %+v", info.Features)
		}
	})
}
