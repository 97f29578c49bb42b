package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jkoster/portfolio-performance-backend/internal/api/request"
	"github.com/jkoster/portfolio-performance-backend/internal/apperrors"
	"github.com/jkoster/portfolio-performance-backend/internal/service"
	"github.com/jkoster/portfolio-performance-backend/internal/validation"
)

// PositionHandler handles position-related HTTP requests
type PositionHandler struct {
	positionService *service.PositionService
	importService   *service.ImportService
}

// NewPositionHandler creates a new PositionHandler
func NewPositionHandler(positionService *service.PositionService, importService *service.ImportService) *PositionHandler {
	return &PositionHandler{
		positionService: positionService,
		importService:   importService,
	}
}

// Positions returns the full position list in display order.
//
// Endpoint: GET /api/position/
func (h *PositionHandler) Positions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.positionService.GetAllPositions()
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to retrieve positions",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, positions)
}

// CreatePosition adds a new lot. Lots whose ticker matches an existing
// position are merged; the response is the resulting full list.
//
// Endpoint: POST /api/position/
func (h *PositionHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateCreatePosition(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Validation failed",
			"detail": err.Error(),
		})
		return
	}

	positions, err := h.positionService.CreatePosition(req)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to create position",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, positions)
}

// UpdatePosition applies a partial update and returns the recomputed position.
//
// Endpoint: PUT /api/position/{uuid}
func (h *PositionHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	var req request.UpdatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateUpdatePosition(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Validation failed",
			"detail": err.Error(),
		})
		return
	}

	position, err := h.positionService.UpdatePosition(id, req)
	if errors.Is(err, apperrors.ErrPositionNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error": "Position not found",
		})
		return
	}
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to update position",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, position)
}

// DeletePosition removes a position from the portfolio.
//
// Endpoint: DELETE /api/position/{uuid}
func (h *PositionHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	err := h.positionService.DeletePosition(id)
	if errors.Is(err, apperrors.ErrPositionNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error": "Position not found",
		})
		return
	}
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to delete position",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// ImportPositions accepts a CSV file body and folds its rows into the
// portfolio in file order. The response is the resulting full list.
//
// Endpoint: POST /api/position/import
func (h *PositionHandler) ImportPositions(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	positions, err := h.importService.ImportCSV(r.Body)
	if errors.Is(err, apperrors.ErrEmptyImport) {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Import contains no positions",
		})
		return
	}
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Failed to import positions",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, positions)
}
