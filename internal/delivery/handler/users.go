package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hub-service/internal/application/command"
)

// RegisterUser handles POST /api/users.
func (h *Handler) RegisterUser(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}

	result, err := h.users.RegisterUser(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// LoginUser handles POST /api/auth.
func (h *Handler) LoginUser(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}

	result, err := h.users.LoginUser(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// GetAuthenticatedUser handles GET /api/auth.
func (h *Handler) GetAuthenticatedUser(c echo.Context) error {
	result, err := h.users.GetAuthenticatedUser(c.Request().Context(), CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}
