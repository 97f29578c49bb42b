package repository

import (
	"database/sql"
	"fmt"

	"github.com/jkoster/portfolio-performance-backend/internal/apperrors"
	"github.com/jkoster/portfolio-performance-backend/internal/model"
)

// PositionRepository provides data access methods for the position table.
// Positions are kept in display order: list order is insertion order and
// carries no calculation semantics.
type PositionRepository struct {
	db *sql.DB
}

// NewPositionRepository creates a new PositionRepository with the provided database connection.
func NewPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

const positionColumns = `
    id, ticker, name, sector, avg_cost, current_price, shares, years_held,
    nominal_return_pct, real_return_pct, cagr_pct, status, weight_pct, last_updated
`

// GetPositions retrieves all positions ordered by their display order.
// Returns an empty slice when the portfolio is empty.
func (r *PositionRepository) GetPositions() ([]model.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM position ORDER BY display_order`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query position table: %w", err)
	}
	defer rows.Close()

	positions := []model.Position{}

	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating position table: %w", err)
	}

	return positions, nil
}

// GetPositionOnID retrieves a single position by its ID.
func (r *PositionRepository) GetPositionOnID(id string) (model.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM position WHERE id = ?`

	p, err := scanPosition(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return model.Position{}, apperrors.ErrPositionNotFound
	}
	if err != nil {
		return model.Position{}, err
	}

	return p, nil
}

// CreatePosition inserts a new position at the end of the display order.
func (r *PositionRepository) CreatePosition(p model.Position) error {
	query := `
        INSERT INTO position (` + positionColumns + `, display_order)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
            (SELECT COALESCE(MAX(display_order), 0) + 1 FROM position))
    `

	if _, err := r.db.Exec(query, positionArgs(p)...); err != nil {
		return fmt.Errorf("failed to insert position: %w", err)
	}

	return nil
}

// UpdatePosition overwrites all stored fields of an existing position.
func (r *PositionRepository) UpdatePosition(p model.Position) error {
	query := `
        UPDATE position
        SET ticker = ?, name = ?, sector = ?, avg_cost = ?, current_price = ?,
            shares = ?, years_held = ?, nominal_return_pct = ?, real_return_pct = ?,
            cagr_pct = ?, status = ?, weight_pct = ?, last_updated = ?
        WHERE id = ?
    `

	result, err := r.db.Exec(query,
		p.Ticker,
		p.Name,
		p.Sector,
		p.AvgCost,
		p.CurrentPrice,
		p.Shares,
		p.YearsHeld,
		p.NominalReturnPct,
		p.RealReturnPct,
		p.CAGRPct,
		string(p.Status),
		p.WeightPct,
		p.LastUpdated,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPositionNotFound
	}

	return nil
}

// DeletePosition removes a position by ID.
func (r *PositionRepository) DeletePosition(id string) error {
	result, err := r.db.Exec(`DELETE FROM position WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPositionNotFound
	}

	return nil
}

// ReplaceAll atomically replaces the stored position list with the given
// one, preserving its order. Used after merge passes and bulk imports,
// where the whole list is recomputed in memory.
func (r *PositionRepository) ReplaceAll(positions []model.Position) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM position`); err != nil {
		return fmt.Errorf("failed to clear position table: %w", err)
	}

	insert := `
        INSERT INTO position (` + positionColumns + `, display_order)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	for i, p := range positions {
		args := append(positionArgs(p), i+1)
		if _, err := tx.Exec(insert, args...); err != nil {
			return fmt.Errorf("failed to insert position %s: %w", p.Ticker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit position replacement: %w", err)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPosition(s scanner) (model.Position, error) {
	var p model.Position
	var status string

	err := s.Scan(
		&p.ID,
		&p.Ticker,
		&p.Name,
		&p.Sector,
		&p.AvgCost,
		&p.CurrentPrice,
		&p.Shares,
		&p.YearsHeld,
		&p.NominalReturnPct,
		&p.RealReturnPct,
		&p.CAGRPct,
		&status,
		&p.WeightPct,
		&p.LastUpdated,
	)
	if err == sql.ErrNoRows {
		return model.Position{}, err
	}
	if err != nil {
		return model.Position{}, fmt.Errorf("failed to scan position row: %w", err)
	}

	p.Status = model.PositionStatus(status)
	return p, nil
}

func positionArgs(p model.Position) []any {
	return []any{
		p.ID,
		p.Ticker,
		p.Name,
		p.Sector,
		p.AvgCost,
		p.CurrentPrice,
		p.Shares,
		p.YearsHeld,
		p.NominalReturnPct,
		p.RealReturnPct,
		p.CAGRPct,
		string(p.Status),
		p.WeightPct,
		p.LastUpdated,
	}
}
