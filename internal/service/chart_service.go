package service

import (
	"fmt"
	"time"

	"github.com/jkoster/portfolio-performance-backend/internal/model"
	"github.com/jkoster/portfolio-performance-backend/internal/perf"
	"github.com/jkoster/portfolio-performance-backend/internal/refdata"
	"github.com/jkoster/portfolio-performance-backend/internal/repository"
)

// ChartService builds the historical growth series for the current
// portfolio against a chosen benchmark. The series is reconstructed
// from each position's entry and current price and is illustrative,
// not a record of actual historical prices.
type ChartService struct {
	positionRepo *repository.PositionRepository
	now          func() time.Time
}

// NewChartService creates a new ChartService.
func NewChartService(positionRepo *repository.PositionRepository) *ChartService {
	return &ChartService{
		positionRepo: positionRepo,
		now:          time.Now,
	}
}

// GetChart returns the year-by-year portfolio/benchmark/inflation
// growth series for the given benchmark.
func (s *ChartService) GetChart(benchmark model.Benchmark) ([]model.ChartPoint, error) {
	positions, err := s.positionRepo.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("failed to load positions: %w", err)
	}

	return perf.Reconstruct(
		positions,
		refdata.BenchmarkFor(benchmark),
		refdata.Inflation(),
		s.now().Year(),
	), nil
}
