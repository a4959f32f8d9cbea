package repository

import (
	"context"
	"database/sql"
	"errors"

	"trading-service/internal/entity"
)

type HoldingRepository struct {
	db *sql.DB
}

func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db}
}

func (r *HoldingRepository) ListByUser(ctx context.Context, userID int) ([]*entity.Holding, error) {
	query := `SELECT id, user_id, symbol, shares FROM holdings WHERE user_id = ? ORDER BY symbol`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []*entity.Holding
	for rows.Next() {
		holding := &entity.Holding{}
		err := rows.Scan(&holding.ID, &holding.UserID, &holding.Symbol, &holding.Shares)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}

	return holdings, rows.Err()
}

func (r *HoldingRepository) GetByUserAndSymbol(ctx context.Context, userID int, symbol string) (*entity.Holding, error) {
	query := `SELECT id, user_id, symbol, shares FROM holdings WHERE user_id = ? AND symbol = ?`
	holding := &entity.Holding{}
	err := r.db.QueryRowContext(ctx, query, userID, symbol).Scan(&holding.ID, &holding.UserID, &holding.Symbol, &holding.Shares)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	return holding, nil
}
