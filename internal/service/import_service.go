package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jkoster/portfolio-performance-backend/internal/apperrors"
	"github.com/jkoster/portfolio-performance-backend/internal/model"
)

// ImportService parses user-supplied CSV position files into position
// lots and folds them into the portfolio via the merge engine.
//
// Expected columns (header row required, order-insensitive):
// ticker, shares, avg_cost and optionally name, sector, years_held.
type ImportService struct {
	positionService *PositionService
}

// NewImportService creates a new ImportService.
func NewImportService(positionService *PositionService) *ImportService {
	return &ImportService{positionService: positionService}
}

// ImportCSV parses the reader and merges the parsed lots into the
// portfolio in file order. Returns the resulting full position list.
func (s *ImportService) ImportCSV(r io.Reader) ([]model.Position, error) {
	incoming, err := parsePositionsCSV(r)
	if err != nil {
		return nil, err
	}

	return s.positionService.ImportPositions(incoming)
}

func parsePositionsCSV(r io.Reader) ([]model.Position, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.ErrEmptyImport
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"ticker", "shares", "avg_cost"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required CSV column %q", required)
		}
	}

	var positions []model.Position
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		p, err := parsePositionRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}
		positions = append(positions, p)
	}

	if len(positions) == 0 {
		return nil, apperrors.ErrEmptyImport
	}

	return positions, nil
}

func parsePositionRecord(record []string, columns map[string]int) (model.Position, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	ticker := field("ticker")
	if ticker == "" {
		return model.Position{}, apperrors.ErrInvalidTicker
	}

	shares, err := parseNonNegative("shares", field("shares"))
	if err != nil {
		return model.Position{}, err
	}
	avgCost, err := parseNonNegative("avg_cost", field("avg_cost"))
	if err != nil {
		return model.Position{}, err
	}

	yearsHeld := 0.0
	if raw := field("years_held"); raw != "" {
		yearsHeld, err = parseNonNegative("years_held", raw)
		if err != nil {
			return model.Position{}, err
		}
	}

	return model.Position{
		Ticker:    ticker,
		Name:      field("name"),
		Sector:    field("sector"),
		Shares:    shares,
		AvgCost:   avgCost,
		YearsHeld: yearsHeld,
	}, nil
}

func parseNonNegative(name, raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", name, raw)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s: %w", name, apperrors.ErrNegativeAmount)
	}
	return value, nil
}
