// Package api holds the HTTP handlers. Errors surface as an "apology": a
// JSON envelope {"error": message} with a 400-class status for anything
// the user can fix and 500 for everything else.
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"trading-service/internal/entity"
	"trading-service/internal/quote"
	"trading-service/internal/service"
)

func apology(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// apologize maps service errors to apology responses. Validation and
// business-rule failures are the user's to fix; everything else is ours.
func apologize(c echo.Context, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, entity.ErrInsufficientCash),
		errors.Is(err, entity.ErrInsufficientShares),
		errors.Is(err, quote.ErrSymbolNotFound),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrInvalidCredentials):
		return apology(c, http.StatusBadRequest, err.Error())
	default:
		return apology(c, http.StatusInternalServerError, err.Error())
	}
}
