package api

import (
	"github.com/labstack/echo/v4"

	"trading-service/internal/service"
)

type TradingHandler struct {
	tradingService *service.TradingService
}

// NewTradingHandler creates a new instance of TradingHandler.
func NewTradingHandler(tradingService *service.TradingService) *TradingHandler {
	return &TradingHandler{tradingService: tradingService}
}

type tradeRequest struct {
	Symbol string `json:"symbol" form:"symbol"`
	Shares string `json:"shares" form:"shares"`
}

// Buy purchases shares at the current market price --> POST /buy
func (h *TradingHandler) Buy(c echo.Context) error {
	req := tradeRequest{}
	if err := c.Bind(&req); err != nil {
		return apology(c, 400, "invalid request payload")
	}

	trade, err := h.tradingService.Buy(c.Request().Context(), userID(c), req.Symbol, req.Shares)
	if err != nil {
		return apologize(c, err)
	}

	return c.JSON(200, trade)
}

// Sell sells shares of a held symbol --> POST /sell
func (h *TradingHandler) Sell(c echo.Context) error {
	req := tradeRequest{}
	if err := c.Bind(&req); err != nil {
		return apology(c, 400, "invalid request payload")
	}

	trade, err := h.tradingService.Sell(c.Request().Context(), userID(c), req.Symbol, req.Shares)
	if err != nil {
		return apologize(c, err)
	}

	return c.JSON(200, trade)
}

// History lists the user's transactions --> GET /history
func (h *TradingHandler) History(c echo.Context) error {
	transactions, err := h.tradingService.History(c.Request().Context(), userID(c))
	if err != nil {
		return apologize(c, err)
	}

	return c.JSON(200, transactions)
}

// Contribute adds cash to the account --> POST /contribute
func (h *TradingHandler) Contribute(c echo.Context) error {
	req := struct {
		Cash string `json:"cash" form:"cash"`
	}{}
	if err := c.Bind(&req); err != nil {
		return apology(c, 400, "invalid request payload")
	}

	balance, err := h.tradingService.Contribute(c.Request().Context(), userID(c), req.Cash)
	if err != nil {
		return apologize(c, err)
	}

	return c.JSON(200, map[string]string{"cash": balance.StringFixed(2)})
}
