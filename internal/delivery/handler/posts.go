package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hub-service/internal/application/command"
)

func (h *Handler) CreatePost(c echo.Context) error {
	var cmd command.CreatePostCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}

	result, err := h.posts.CreatePost(c.Request().Context(), CurrentUserID(c), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) ListPosts(c echo.Context) error {
	result, err := h.posts.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) GetPost(c echo.Context) error {
	result, err := h.posts.FindPostById(c.Request().Context(), pathID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) DeletePost(c echo.Context) error {
	if err := h.posts.DeletePost(c.Request().Context(), CurrentUserID(c), pathID(c, "id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Msg: "Post Removed!"})
}

func (h *Handler) LikePost(c echo.Context) error {
	result, err := h.posts.LikePost(c.Request().Context(), CurrentUserID(c), pathID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) UnlikePost(c echo.Context) error {
	result, err := h.posts.UnlikePost(c.Request().Context(), CurrentUserID(c), pathID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) AddComment(c echo.Context) error {
	var cmd command.AddCommentCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}

	result, err := h.posts.AddComment(c.Request().Context(), CurrentUserID(c), pathID(c, "id"), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) DeleteComment(c echo.Context) error {
	result, err := h.posts.DeleteComment(c.Request().Context(), CurrentUserID(c), pathID(c, "id"), pathID(c, "comment_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}
