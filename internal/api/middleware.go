package api

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"trading-service/internal/service"
	"trading-service/internal/session"
)

const userIDKey = "user_id"

// SessionGuard runs after the JWT middleware. It checks that the token is
// still the live session in the session store, so a logout invalidates it
// immediately, and puts the acting user's id on the request context.
func SessionGuard(authService *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return apology(c, http.StatusUnauthorized, "must be logged in")
			}
			claims, ok := token.Claims.(*service.SessionClaims)
			if !ok {
				return apology(c, http.StatusUnauthorized, "must be logged in")
			}

			if err := authService.ValidateSession(c.Request().Context(), claims.UserID, token.Raw); err != nil {
				// A missing or superseded session means the caller is logged
				// out. Anything else is the session store failing, not the
				// caller's fault.
				if errors.Is(err, session.ErrNoSession) || errors.Is(err, service.ErrInvalidCredentials) {
					return apology(c, http.StatusUnauthorized, "must be logged in")
				}
				return apology(c, http.StatusInternalServerError, err.Error())
			}

			c.Set(userIDKey, claims.UserID)
			return next(c)
		}
	}
}

func userID(c echo.Context) int {
	id, _ := c.Get(userIDKey).(int)
	return id
}
