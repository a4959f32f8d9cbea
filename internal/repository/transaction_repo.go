package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"trading-service/internal/entity"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db}
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, user_id, transaction_type, symbol, price, shares, total, reference, transacted
		FROM transactions WHERE user_id = ? ORDER BY transacted DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*entity.Transaction
	for rows.Next() {
		tx := &entity.Transaction{}
		var price, total string
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Symbol, &price, &tx.Shares, &total, &tx.Reference, &tx.Transacted)
		if err != nil {
			return nil, err
		}

		tx.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}
		tx.Total, err = decimal.NewFromString(total)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
