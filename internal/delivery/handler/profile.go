package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hub-service/internal/application/command"
)

func (h *Handler) GetMyProfile(c echo.Context) error {
	result, err := h.profiles.GetMyProfile(c.Request().Context(), CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) UpsertProfile(c echo.Context) error {
	var cmd command.UpsertProfileCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}

	result, err := h.profiles.UpsertProfile(c.Request().Context(), CurrentUserID(c), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) ListProfiles(c echo.Context) error {
	result, err := h.profiles.ListProfiles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) GetProfileByUser(c echo.Context) error {
	result, err := h.profiles.FindProfileByUser(c.Request().Context(), pathID(c, "user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

// DeleteAccount removes the caller's posts, profile and user.
func (h *Handler) DeleteAccount(c echo.Context) error {
	if err := h.profiles.DeleteAccount(c.Request().Context(), CurrentUserID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Msg: "User deleted"})
}

func (h *Handler) AddExperience(c echo.Context) error {
	var cmd command.AddExperienceCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}

	result, err := h.profiles.AddExperience(c.Request().Context(), CurrentUserID(c), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) DeleteExperience(c echo.Context) error {
	result, err := h.profiles.DeleteExperience(c.Request().Context(), CurrentUserID(c), pathID(c, "exp_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) AddEducation(c echo.Context) error {
	var cmd command.AddEducationCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}

	result, err := h.profiles.AddEducation(c.Request().Context(), CurrentUserID(c), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) DeleteEducation(c echo.Context) error {
	result, err := h.profiles.DeleteEducation(c.Request().Context(), CurrentUserID(c), pathID(c, "edu_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}
