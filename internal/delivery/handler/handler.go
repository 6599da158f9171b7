package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hub-service/internal/application/interfaces"
	"hub-service/internal/apperrors"
)

type Handler struct {
	users    interfaces.UserService
	posts    interfaces.PostService
	profiles interfaces.ProfileService
}

func NewHandler(
	users interfaces.UserService,
	posts interfaces.PostService,
	profiles interfaces.ProfileService,
) *Handler {
	return &Handler{
		users:    users,
		posts:    posts,
		profiles: profiles,
	}
}

// MessageResponse is the body of endpoints that only confirm an action.
type MessageResponse struct {
	Msg string `json:"msg"`
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "API Running")
}

// bind decodes the JSON body into cmd and runs the registered validator.
func bind(c echo.Context, cmd any) error {
	if err := c.Bind(cmd); err != nil {
		return apperrors.Wrap(apperrors.KindValidation, "Invalid request body", err)
	}
	return c.Validate(cmd)
}

// pathID parses a UUID path parameter. Malformed ids map to uuid.Nil,
// which no stored resource carries, so lookups report not found.
func pathID(c echo.Context, name string) uuid.UUID {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil
	}
	return id
}
