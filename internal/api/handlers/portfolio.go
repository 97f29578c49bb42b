package handlers

import (
	"net/http"

	"github.com/jkoster/portfolio-performance-backend/internal/model"
	"github.com/jkoster/portfolio-performance-backend/internal/service"
)

// PortfolioHandler handles portfolio-level HTTP requests: aggregate
// summary and the reconstructed growth chart.
type PortfolioHandler struct {
	positionService *service.PositionService
	chartService    *service.ChartService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(positionService *service.PositionService, chartService *service.ChartService) *PortfolioHandler {
	return &PortfolioHandler{
		positionService: positionService,
		chartService:    chartService,
	}
}

// Summary returns the aggregate portfolio totals.
//
// Endpoint: GET /api/portfolio/summary
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.positionService.GetSummary()
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to get portfolio summary",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// ChartResponse wraps the reconstructed series with its benchmark and a
// disclaimer: per-position history is synthesized from entry and
// current prices, so the portfolio line is illustrative.
type ChartResponse struct {
	Benchmark model.Benchmark    `json:"benchmark"`
	Points    []model.ChartPoint `json:"points"`
	Synthetic bool               `json:"synthetic"`
}

// Chart returns the year-by-year growth series for the selected benchmark.
//
// Endpoint: GET /api/portfolio/chart?benchmark=sp500|nasdaq|dow
func (h *PortfolioHandler) Chart(w http.ResponseWriter, r *http.Request) {
	benchmark, err := model.ParseBenchmark(r.URL.Query().Get("benchmark"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid benchmark",
			"detail": err.Error(),
		})
		return
	}

	points, err := h.chartService.GetChart(benchmark)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to build chart series",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, ChartResponse{
		Benchmark: benchmark,
		Points:    points,
		Synthetic: true,
	})
}
