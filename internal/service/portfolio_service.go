package service

import (
	"context"

	"github.com/shopspring/decimal"

	"trading-service/internal/entity"
)

// PortfolioService handles the portfolio view and single-symbol quotes.
type PortfolioService struct {
	users    entity.UserRepository
	holdings entity.HoldingRepository
	quotes   QuoteProvider
}

// NewPortfolioService creates a new instance of PortfolioService.
func NewPortfolioService(users entity.UserRepository, holdings entity.HoldingRepository, quotes QuoteProvider) *PortfolioService {
	return &PortfolioService{
		users:    users,
		holdings: holdings,
		quotes:   quotes,
	}
}

// Portfolio prices every holding at its live quote and totals the account.
// Quotes are fetched per symbol with no snapshot consistency: two symbols
// in the same view may be priced milliseconds apart.
func (s *PortfolioService) Portfolio(ctx context.Context, userID int) (*entity.Portfolio, error) {
	holdings, err := s.holdings.ListByUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing holdings for user %d", userID)
		return nil, err
	}

	portfolio := &entity.Portfolio{Positions: []entity.Position{}}
	totalValue := decimal.Zero

	for _, holding := range holdings {
		q, err := s.quotes.Lookup(ctx, holding.Symbol)
		if err != nil {
			logger.Error().Err(err).Msgf("Error quoting %s for user %d", holding.Symbol, userID)
			return nil, err
		}

		value := q.Price.Mul(decimal.NewFromInt(int64(holding.Shares)))
		totalValue = totalValue.Add(value)

		portfolio.Positions = append(portfolio.Positions, entity.Position{
			Symbol: holding.Symbol,
			Name:   q.Name,
			Shares: holding.Shares,
			Price:  q.Price,
			Value:  value,
		})
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting user %d", userID)
		return nil, err
	}

	portfolio.Cash = user.Cash
	portfolio.Total = totalValue.Add(user.Cash)
	return portfolio, nil
}

// Quote looks up the current price for one symbol.
func (s *PortfolioService) Quote(ctx context.Context, symbol string) (*entity.Quote, error) {
	if symbol == "" {
		return nil, validationErr("must provide stock symbol")
	}
	return s.quotes.Lookup(ctx, symbol)
}
