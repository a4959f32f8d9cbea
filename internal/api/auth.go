package api

import (
	"github.com/labstack/echo/v4"

	"trading-service/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register registers a new user and logs it in --> POST /register
func (h *AuthHandler) Register(c echo.Context) error {
	creds := struct {
		Username     string `json:"username" form:"username"`
		Password     string `json:"password" form:"password"`
		Confirmation string `json:"confirmation" form:"confirmation"`
	}{}
	if err := c.Bind(&creds); err != nil {
		return apology(c, 400, "invalid request payload")
	}

	token, err := h.authService.Register(c.Request().Context(), creds.Username, creds.Password, creds.Confirmation)
	if err != nil {
		return apologize(c, err)
	}

	return c.JSON(200, map[string]string{"token": token})
}

// Login logs a user in --> POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	creds := struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}{}
	if err := c.Bind(&creds); err != nil {
		return apology(c, 400, "invalid request payload")
	}

	token, err := h.authService.Login(c.Request().Context(), creds.Username, creds.Password)
	if err != nil {
		return apologize(c, err)
	}

	return c.JSON(200, map[string]string{"token": token})
}

// Logout clears the session --> POST /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), userID(c)); err != nil {
		return apologize(c, err)
	}

	return c.JSON(200, map[string]string{"message": "logged out"})
}
