package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jkoster/portfolio-performance-backend/internal/api/request"
	"github.com/jkoster/portfolio-performance-backend/internal/apperrors"
	"github.com/jkoster/portfolio-performance-backend/internal/service"
)

// SettingsHandler handles application settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// ProviderKeyResponse reports provider-key state without ever exposing
// the key itself.
type ProviderKeyResponse struct {
	Configured bool   `json:"configured"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// GetProviderKey reports whether a provider key is configured.
//
// Endpoint: GET /api/settings/provider-key
func (h *SettingsHandler) GetProviderKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.settingsService.GetProviderKey()
	if errors.Is(err, apperrors.ErrProviderKeyNotFound) {
		respondJSON(w, http.StatusOK, ProviderKeyResponse{Configured: false})
		return
	}
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to read provider key",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, ProviderKeyResponse{
		Configured: true,
		UpdatedAt:  key.UpdatedAt.Format(time.RFC3339),
	})
}

// SetProviderKey stores a new provider API key, encrypted at rest.
//
// Endpoint: PUT /api/settings/provider-key
func (h *SettingsHandler) SetProviderKey(w http.ResponseWriter, r *http.Request) {
	var req request.SetProviderKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	err := h.settingsService.SetProviderKey(req.Key)
	if errors.Is(err, apperrors.ErrEmptyProviderKey) {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Provider key cannot be empty",
		})
		return
	}
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to store provider key",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, ProviderKeyResponse{Configured: true})
}
