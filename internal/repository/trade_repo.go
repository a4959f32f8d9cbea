package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"trading-service/internal/entity"
)

type TradeRepository struct {
	db *sql.DB
}

func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db}
}

// Buy debits cash, appends the transaction row and upserts the holding in
// one database transaction. The debit carries the affordability check in
// its WHERE clause, so a concurrent buy cannot push the balance to zero
// or below: the trade is accepted only while cash - total > 0.
func (r *TradeRepository) Buy(ctx context.Context, trade *entity.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	debitQuery := `UPDATE users SET cash = cash - ? WHERE id = ? AND cash > ?`
	res, err := tx.ExecContext(ctx, debitQuery, trade.Total.StringFixed(2), trade.UserID, trade.Total.StringFixed(2))
	if err != nil {
		tx.Rollback()
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return entity.ErrInsufficientCash
	}

	if err := insertTransaction(ctx, tx, trade); err != nil {
		tx.Rollback()
		return err
	}

	upsertQuery := `
		INSERT INTO holdings (user_id, symbol, shares) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE shares = shares + VALUES(shares)`
	_, err = tx.ExecContext(ctx, upsertQuery, trade.UserID, trade.Symbol, trade.Shares)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Sell decrements the holding, removes it when it reaches zero, credits
// cash and appends the transaction row in one database transaction. Both
// the credit and the holding update are scoped by user id.
func (r *TradeRepository) Sell(ctx context.Context, trade *entity.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	decrementQuery := `UPDATE holdings SET shares = shares - ? WHERE user_id = ? AND symbol = ? AND shares >= ?`
	res, err := tx.ExecContext(ctx, decrementQuery, trade.Shares, trade.UserID, trade.Symbol, trade.Shares)
	if err != nil {
		tx.Rollback()
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return entity.ErrInsufficientShares
	}

	deleteQuery := `DELETE FROM holdings WHERE user_id = ? AND symbol = ? AND shares = 0`
	_, err = tx.ExecContext(ctx, deleteQuery, trade.UserID, trade.Symbol)
	if err != nil {
		tx.Rollback()
		return err
	}

	creditQuery := `UPDATE users SET cash = cash + ? WHERE id = ?`
	_, err = tx.ExecContext(ctx, creditQuery, trade.Total.StringFixed(2), trade.UserID)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := insertTransaction(ctx, tx, trade); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *TradeRepository) AddCash(ctx context.Context, userID int, amount decimal.Decimal) error {
	query := `UPDATE users SET cash = cash + ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, amount.StringFixed(2), userID)
	return err
}

func insertTransaction(ctx context.Context, tx *sql.Tx, trade *entity.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, transaction_type, symbol, price, shares, total, reference, transacted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, query,
		trade.UserID, trade.Type, trade.Symbol, trade.Price.String(),
		trade.Shares, trade.Total.StringFixed(2), trade.Reference, trade.Transacted)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	trade.ID = int(id)
	return nil
}
