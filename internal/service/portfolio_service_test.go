package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"trading-service/internal/entity"
	"trading-service/internal/quote"
)

func TestPortfolio_TotalsPositionsAndCash(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockHoldings := new(MockHoldingRepository)
	mockQuotes := new(MockQuoteProvider)
	service := NewPortfolioService(mockUsers, mockHoldings, mockQuotes)

	mockHoldings.On("ListByUser", ctx, 1).Return([]*entity.Holding{
		{UserID: 1, Symbol: "AAA", Shares: 10},
		{UserID: 1, Symbol: "BBB", Shares: 2},
	}, nil)
	mockQuotes.On("Lookup", ctx, "AAA").Return(&entity.Quote{Symbol: "AAA", Name: "Triple A Corp", Price: decimal.NewFromInt(50)}, nil)
	mockQuotes.On("Lookup", ctx, "BBB").Return(&entity.Quote{Symbol: "BBB", Name: "Double B Inc", Price: decimal.NewFromFloat(20.5)}, nil)
	mockUsers.On("GetByID", ctx, 1).Return(&entity.User{ID: 1, Cash: decimal.NewFromInt(100)}, nil)

	portfolio, err := service.Portfolio(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, portfolio.Positions, 2)
	assert.True(t, portfolio.Positions[0].Value.Equal(decimal.NewFromInt(500)))
	assert.True(t, portfolio.Positions[1].Value.Equal(decimal.NewFromInt(41)))
	assert.True(t, portfolio.Cash.Equal(decimal.NewFromInt(100)))
	assert.True(t, portfolio.Total.Equal(decimal.NewFromInt(641)))

	mockHoldings.AssertExpectations(t)
	mockQuotes.AssertExpectations(t)
}

func TestPortfolio_EmptyHoldings(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockHoldings := new(MockHoldingRepository)
	mockQuotes := new(MockQuoteProvider)
	service := NewPortfolioService(mockUsers, mockHoldings, mockQuotes)

	mockHoldings.On("ListByUser", ctx, 1).Return([]*entity.Holding{}, nil)
	mockUsers.On("GetByID", ctx, 1).Return(&entity.User{ID: 1, Cash: decimal.NewFromInt(10000)}, nil)

	portfolio, err := service.Portfolio(ctx, 1)

	assert.NoError(t, err)
	assert.Empty(t, portfolio.Positions)
	assert.True(t, portfolio.Total.Equal(decimal.NewFromInt(10000)))
	mockQuotes.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestQuote_MissingSymbol(t *testing.T) {
	ctx := context.Background()
	service := NewPortfolioService(new(MockUserRepository), new(MockHoldingRepository), new(MockQuoteProvider))

	_, err := service.Quote(ctx, "")

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestQuote_UnknownSymbol(t *testing.T) {
	ctx := context.Background()
	mockQuotes := new(MockQuoteProvider)
	service := NewPortfolioService(new(MockUserRepository), new(MockHoldingRepository), mockQuotes)

	mockQuotes.On("Lookup", ctx, "NOPE").Return(nil, quote.ErrSymbolNotFound)

	_, err := service.Quote(ctx, "NOPE")

	assert.ErrorIs(t, err, quote.ErrSymbolNotFound)
}
