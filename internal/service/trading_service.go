package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"trading-service/internal/entity"
)

// TradingService handles buy, sell, cash contribution and the trade log.
type TradingService struct {
	users        entity.UserRepository
	holdings     entity.HoldingRepository
	transactions entity.TransactionRepository
	trades       entity.TradeRepository
	quotes       QuoteProvider
	publisher    TradePublisher
}

// NewTradingService creates a new instance of TradingService.
func NewTradingService(
	users entity.UserRepository,
	holdings entity.HoldingRepository,
	transactions entity.TransactionRepository,
	trades entity.TradeRepository,
	quotes QuoteProvider,
	publisher TradePublisher,
) *TradingService {
	return &TradingService{
		users:        users,
		holdings:     holdings,
		transactions: transactions,
		trades:       trades,
		quotes:       quotes,
		publisher:    publisher,
	}
}

// Buy purchases shares of symbol at the current market price. The trade is
// accepted only while cash - cost stays strictly above zero: spending the
// balance exactly to zero is rejected.
func (s *TradingService) Buy(ctx context.Context, userID int, symbol, rawShares string) (*entity.Transaction, error) {
	if symbol == "" {
		return nil, validationErr("must provide stock symbol")
	}

	shares, err := parseShares(rawShares)
	if err != nil {
		return nil, err
	}

	q, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	cost := q.Price.Mul(decimal.NewFromInt(int64(shares)))

	trade := &entity.Transaction{
		UserID:     userID,
		Type:       entity.TradeTypeBuy,
		Symbol:     q.Symbol,
		Price:      q.Price,
		Shares:     shares,
		Total:      cost,
		Reference:  uuid.NewString(),
		Transacted: time.Now(),
	}

	if err := s.trades.Buy(ctx, trade); err != nil {
		if !errors.Is(err, entity.ErrInsufficientCash) {
			logger.Error().Err(err).Msgf("Error executing buy for user %d", userID)
		}
		return nil, err
	}

	s.publish(ctx, trade)
	return trade, nil
}

// Sell sells shares of a currently held symbol at the current market price.
func (s *TradingService) Sell(ctx context.Context, userID int, symbol, rawShares string) (*entity.Transaction, error) {
	if symbol == "" {
		return nil, validationErr("must provide stock symbol")
	}

	shares, err := parseShares(rawShares)
	if err != nil {
		return nil, err
	}

	q, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	holding, err := s.holdings.GetByUserAndSymbol(ctx, userID, q.Symbol)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, validationErr("symbol not held in portfolio")
		}
		logger.Error().Err(err).Msgf("Error reading holding %s for user %d", q.Symbol, userID)
		return nil, err
	}
	if holding.Shares < shares {
		return nil, entity.ErrInsufficientShares
	}

	proceeds := q.Price.Mul(decimal.NewFromInt(int64(shares)))

	trade := &entity.Transaction{
		UserID:     userID,
		Type:       entity.TradeTypeSell,
		Symbol:     q.Symbol,
		Price:      q.Price,
		Shares:     shares,
		Total:      proceeds,
		Reference:  uuid.NewString(),
		Transacted: time.Now(),
	}

	if err := s.trades.Sell(ctx, trade); err != nil {
		if !errors.Is(err, entity.ErrInsufficientShares) {
			logger.Error().Err(err).Msgf("Error executing sell for user %d", userID)
		}
		return nil, err
	}

	s.publish(ctx, trade)
	return trade, nil
}

// History returns the user's transactions, newest first. Share counts on
// sell rows are negated for display; the stored rows stay positive.
func (s *TradingService) History(ctx context.Context, userID int) ([]*entity.Transaction, error) {
	transactions, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing transactions for user %d", userID)
		return nil, err
	}

	for _, tx := range transactions {
		if tx.Type == entity.TradeTypeSell {
			tx.Shares = -tx.Shares
		}
	}

	return transactions, nil
}

// Contribute adds cash to the user's simulated balance and returns the
// updated balance.
func (s *TradingService) Contribute(ctx context.Context, userID int, rawCash string) (decimal.Decimal, error) {
	if rawCash == "" {
		return decimal.Zero, validationErr("must enter amount of cash to add")
	}

	amount, err := decimal.NewFromString(rawCash)
	if err != nil {
		return decimal.Zero, validationErr("must enter numeric characters for cash amount")
	}
	if !amount.IsPositive() {
		return decimal.Zero, validationErr("cash amount must be positive")
	}

	if err := s.trades.AddCash(ctx, userID, amount); err != nil {
		logger.Error().Err(err).Msgf("Error adding cash for user %d", userID)
		return decimal.Zero, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting user %d", userID)
		return decimal.Zero, err
	}

	return user.Cash, nil
}

// publish emits the trade event. The trade is already committed, so a
// broker failure is logged rather than surfaced to the user.
func (s *TradingService) publish(ctx context.Context, trade *entity.Transaction) {
	if err := s.publisher.PublishTrade(ctx, trade); err != nil {
		logger.Error().Err(err).Msgf("Error publishing trade event %s", trade.Reference)
	}
}

// parseShares accepts the share count as submitted. It follows the form
// semantics: "3.0" counts as an integer, "3.5" and "abc" do not, and the
// count must be at least one. The upper bound keeps the int conversion
// from overflowing on inputs like "1e20", which would wrap negative.
func parseShares(raw string) (int, error) {
	if raw == "" {
		return 0, validationErr("must provide number of shares")
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, validationErr("must enter numeric characters for shares")
	}
	if f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return 0, validationErr("number of shares must be a positive integer")
	}

	return int(f), nil
}
