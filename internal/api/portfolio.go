package api

import (
	"github.com/labstack/echo/v4"

	"trading-service/internal/service"
)

type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new instance of PortfolioHandler.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// Index shows the portfolio: every holding priced live, plus cash and the
// account total --> GET /
func (h *PortfolioHandler) Index(c echo.Context) error {
	portfolio, err := h.portfolioService.Portfolio(c.Request().Context(), userID(c))
	if err != nil {
		return apologize(c, err)
	}

	return c.JSON(200, portfolio)
}

// Quote looks up the current price for a symbol --> GET/POST /quote
func (h *PortfolioHandler) Quote(c echo.Context) error {
	symbol := c.QueryParam("symbol")
	if symbol == "" {
		symbol = c.FormValue("symbol")
	}

	q, err := h.portfolioService.Quote(c.Request().Context(), symbol)
	if err != nil {
		return apologize(c, err)
	}

	return c.JSON(200, q)
}
