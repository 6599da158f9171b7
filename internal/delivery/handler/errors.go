package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"hub-service/internal/apperrors"
)

const serverErrorBody = "Server Error!"

type ErrorMessage struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the body of every 4xx response.
type ErrorResponse struct {
	Errors []ErrorMessage `json:"errors"`
}

func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation, apperrors.KindConflict:
		return http.StatusBadRequest
	case apperrors.KindUnauthorized, apperrors.KindForbidden:
		return http.StatusUnauthorized
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler is the echo HTTPErrorHandler. Classified errors become the
// errors envelope; anything else is logged and answered with a plain 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, messages := classify(err)
	if status >= http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		messages = nil
	}

	var writeErr error
	switch {
	case c.Request().Method == http.MethodHead:
		writeErr = c.NoContent(status)
	case messages == nil:
		writeErr = c.String(status, serverErrorBody)
	default:
		body := ErrorResponse{Errors: make([]ErrorMessage, 0, len(messages))}
		for _, msg := range messages {
			body.Errors = append(body.Errors, ErrorMessage{Msg: msg})
		}
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		log.Printf("Failed to write error response: %v", writeErr)
	}
}

func classify(err error) (int, []string) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return statusFor(appErr.Kind), appErr.Messages
	}

	// Router and binder errors (unknown route, wrong method, bad JSON)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, []string{fmt.Sprint(httpErr.Message)}
	}

	return http.StatusInternalServerError, nil
}
