package entity

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new user and returns it with the assigned ID.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByID retrieves a user by its ID.
	GetByID(ctx context.Context, id int) (*User, error)

	// GetByUsername retrieves a user by username. Returns ErrNotFound
	// when the username does not exist.
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// HoldingRepository defines read operations for holdings.
type HoldingRepository interface {
	// ListByUser retrieves all holdings for a user.
	ListByUser(ctx context.Context, userID int) ([]*Holding, error)

	// GetByUserAndSymbol retrieves one holding, or nil when the user does
	// not hold the symbol.
	GetByUserAndSymbol(ctx context.Context, userID int, symbol string) (*Holding, error)
}

// TransactionRepository defines read operations for the trade log.
type TransactionRepository interface {
	// ListByUser retrieves all transactions for a user, newest first.
	ListByUser(ctx context.Context, userID int) ([]*Transaction, error)
}

// TradeRepository defines the multi-statement mutations. Each method runs
// its statements inside a single database transaction so balance and
// holdings cannot diverge under concurrent requests.
type TradeRepository interface {
	// Buy debits the user's cash by trade.Total, appends the transaction
	// row and upserts the holding. Fails with ErrInsufficientCash unless
	// cash - total > 0 at commit time (strictly greater).
	Buy(ctx context.Context, trade *Transaction) error

	// Sell decrements the holding (removing the row when it reaches zero),
	// credits the user's cash by trade.Total and appends the transaction
	// row. Fails with ErrInsufficientShares when the user holds fewer
	// shares than trade.Shares.
	Sell(ctx context.Context, trade *Transaction) error

	// AddCash credits amount to the user's cash balance.
	AddCash(ctx context.Context, userID int, amount decimal.Decimal) error
}
