package service

import (
	"strings"

	"github.com/jkoster/portfolio-performance-backend/internal/apperrors"
	"github.com/jkoster/portfolio-performance-backend/internal/model"
	"github.com/jkoster/portfolio-performance-backend/internal/repository"
)

// SettingsService manages application settings, currently the
// market-data provider API key.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetProviderKey returns the stored provider key.
func (s *SettingsService) GetProviderKey() (model.ProviderKey, error) {
	return s.settingsRepo.GetProviderKey()
}

// SetProviderKey stores a new provider key.
func (s *SettingsService) SetProviderKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return apperrors.ErrEmptyProviderKey
	}
	return s.settingsRepo.SetProviderKey(key)
}
