package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jkoster/portfolio-performance-backend/internal/api/request"
	"github.com/jkoster/portfolio-performance-backend/internal/apperrors"
	"github.com/jkoster/portfolio-performance-backend/internal/model"
	"github.com/jkoster/portfolio-performance-backend/internal/perf"
	"github.com/jkoster/portfolio-performance-backend/internal/repository"
)

// PositionService orchestrates the position list: CRUD, duplicate-lot
// merging, bulk imports, and portfolio weight maintenance. Every
// mutation of cost, price, shares or years-held goes through a stats
// recomputation before it is persisted, so the stored derived fields
// are never stale.
type PositionService struct {
	positionRepo *repository.PositionRepository
	inflation    perf.RateTable
}

// NewPositionService creates a new PositionService with the provided
// repository and inflation table.
func NewPositionService(positionRepo *repository.PositionRepository, inflation perf.RateTable) *PositionService {
	return &PositionService{
		positionRepo: positionRepo,
		inflation:    inflation,
	}
}

// GetAllPositions returns the position list in display order.
func (s *PositionService) GetAllPositions() ([]model.Position, error) {
	return s.positionRepo.GetPositions()
}

// GetPosition returns a single position by ID.
func (s *PositionService) GetPosition(id string) (model.Position, error) {
	return s.positionRepo.GetPositionOnID(id)
}

// CreatePosition adds a new lot to the portfolio. A lot whose ticker
// matches an existing position (case-insensitive) is merged into it;
// otherwise it is appended. Returns the resulting full position list.
func (s *PositionService) CreatePosition(req request.CreatePositionRequest) ([]model.Position, error) {
	position := model.Position{
		ID:           uuid.New().String(),
		Ticker:       strings.ToUpper(strings.TrimSpace(req.Ticker)),
		Name:         req.Name,
		Sector:       req.Sector,
		AvgCost:      req.AvgCost,
		CurrentPrice: req.CurrentPrice,
		Shares:       req.Shares,
		YearsHeld:    req.YearsHeld,
	}
	position = perf.CalculateStats(position, s.inflation)

	current, err := s.positionRepo.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("failed to load positions: %w", err)
	}

	merged := perf.MergeInto(current, position, s.inflation)
	merged = s.applyWeights(merged)

	if err := s.positionRepo.ReplaceAll(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// UpdatePosition applies a partial update, recomputes the derived
// statistics and the portfolio weights, and returns the updated position.
func (s *PositionService) UpdatePosition(id string, req request.UpdatePositionRequest) (model.Position, error) {
	positions, err := s.positionRepo.GetPositions()
	if err != nil {
		return model.Position{}, fmt.Errorf("failed to load positions: %w", err)
	}

	index := -1
	for i := range positions {
		if positions[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return model.Position{}, apperrors.ErrPositionNotFound
	}

	p := positions[index]
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Sector != nil {
		p.Sector = *req.Sector
	}
	if req.AvgCost != nil {
		p.AvgCost = *req.AvgCost
	}
	if req.CurrentPrice != nil {
		p.CurrentPrice = *req.CurrentPrice
	}
	if req.Shares != nil {
		p.Shares = *req.Shares
	}
	if req.YearsHeld != nil {
		p.YearsHeld = *req.YearsHeld
	}

	positions[index] = perf.CalculateStats(p, s.inflation)
	positions = s.applyWeights(positions)

	if err := s.positionRepo.ReplaceAll(positions); err != nil {
		return model.Position{}, err
	}

	return positions[index], nil
}

// DeletePosition removes a position and rebalances the remaining weights.
func (s *PositionService) DeletePosition(id string) error {
	if err := s.positionRepo.DeletePosition(id); err != nil {
		return err
	}

	return s.reweigh()
}

// ImportPositions folds a batch of incoming lots into the portfolio in
// the given order. Each incoming lot gets its ticker canonicalized, an
// ID, and a stats pass before merging, so appended (non-duplicate) lots
// are fully derived too. Returns the resulting full position list.
func (s *PositionService) ImportPositions(incoming []model.Position) ([]model.Position, error) {
	if len(incoming) == 0 {
		return nil, apperrors.ErrEmptyImport
	}

	prepared := make([]model.Position, len(incoming))
	for i, p := range incoming {
		p.Ticker = strings.ToUpper(strings.TrimSpace(p.Ticker))
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		prepared[i] = perf.CalculateStats(p, s.inflation)
	}

	current, err := s.positionRepo.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("failed to load positions: %w", err)
	}

	merged := perf.MergeAll(current, prepared, s.inflation)
	merged = s.applyWeights(merged)

	if err := s.positionRepo.ReplaceAll(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// ApplyQuotes writes refreshed prices into matching positions (keyed by
// upper-case ticker) and recomputes their statistics. Tickers without a
// quote are left untouched. Returns the updated list.
func (s *PositionService) ApplyQuotes(prices map[string]model.QuoteUpdate) ([]model.Position, error) {
	positions, err := s.positionRepo.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("failed to load positions: %w", err)
	}

	for i := range positions {
		quote, ok := prices[strings.ToUpper(positions[i].Ticker)]
		if !ok || quote.Price <= 0 {
			continue
		}
		positions[i].CurrentPrice = quote.Price
		positions[i].LastUpdated = quote.AsOf
		positions[i] = perf.CalculateStats(positions[i], s.inflation)
	}

	positions = s.applyWeights(positions)

	if err := s.positionRepo.ReplaceAll(positions); err != nil {
		return nil, err
	}

	return positions, nil
}

// GetSummary aggregates the current portfolio totals.
func (s *PositionService) GetSummary() (model.PortfolioSummary, error) {
	positions, err := s.positionRepo.GetPositions()
	if err != nil {
		return model.PortfolioSummary{}, fmt.Errorf("failed to load positions: %w", err)
	}

	var totalValue, totalCost float64
	for _, p := range positions {
		totalValue += p.MarketValue()
		totalCost += p.CostBasis()
	}

	summary := model.PortfolioSummary{
		TotalValue:    round(totalValue),
		TotalCost:     round(totalCost),
		TotalGainLoss: round(totalValue - totalCost),
		PositionCount: len(positions),
	}
	if totalCost > 0 {
		summary.TotalGainLossPct = round((totalValue - totalCost) / totalCost * 100)
	}

	return summary, nil
}

// reweigh reloads the list, recomputes weights, and persists the result.
func (s *PositionService) reweigh() error {
	positions, err := s.positionRepo.GetPositions()
	if err != nil {
		return fmt.Errorf("failed to load positions: %w", err)
	}

	return s.positionRepo.ReplaceAll(s.applyWeights(positions))
}

// applyWeights sets each position's weight as its share of the total
// portfolio market value, rounded to two decimals. A portfolio with no
// market value gets all-zero weights.
func (s *PositionService) applyWeights(positions []model.Position) []model.Position {
	totalValue := 0.0
	for _, p := range positions {
		totalValue += p.MarketValue()
	}

	out := make([]model.Position, len(positions))
	copy(out, positions)
	for i := range out {
		if totalValue > 0 {
			out[i].WeightPct = round(out[i].MarketValue() / totalValue * 100)
		} else {
			out[i].WeightPct = 0
		}
	}
	return out
}
