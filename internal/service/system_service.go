package service

import (
	"database/sql"
	"strconv"

	"github.com/jkoster/portfolio-performance-backend/internal/database"
	"github.com/jkoster/portfolio-performance-backend/internal/model"
	"github.com/jkoster/portfolio-performance-backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application and schema versions.
func (s *SystemService) CheckVersion() model.VersionInfo {
	dbVersion := "unknown"
	if v, err := database.Version(s.db); err == nil {
		dbVersion = strconv.FormatInt(v, 10)
	}

	return model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  dbVersion,
		Features: map[string]bool{
			"csvImport":    true,
			"quoteRefresh": true,
		},
	}
}
