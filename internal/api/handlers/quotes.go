package handlers

import (
	"net/http"

	"github.com/jkoster/portfolio-performance-backend/internal/service"
)

// QuoteHandler handles market-data refresh HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// Refresh fetches the latest price for every held ticker and writes the
// results through to the position list. Per-ticker failures are
// reported in the response rather than failing the request.
//
// Endpoint: POST /api/quotes/refresh
func (h *QuoteHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.quoteService.RefreshPrices(r.Context())
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to refresh quotes",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}
