package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"hub-service/internal/apperrors"
	"hub-service/internal/infrastructure"
)

// TokenHeader carries the bearer token on authenticated requests.
const TokenHeader = "x-auth-token"

const userIDKey = "user_id"

var (
	ErrNoToken         = apperrors.New(apperrors.KindUnauthorized, "No token, authorization denied")
	ErrTokenNotValid   = apperrors.New(apperrors.KindUnauthorized, "Token is not valid")
	ErrTooManyRequests = apperrors.New(apperrors.KindTooManyRequests, "Too many requests")
)

// AuthGuard rejects requests without a valid token and stores the caller's
// id on the context for CurrentUserID.
func AuthGuard(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				return ErrNoToken
			}
			userID, err := jwtService.VerifyToken(token)
			if err != nil {
				return apperrors.Wrap(apperrors.KindUnauthorized, ErrTokenNotValid.Messages[0], err)
			}
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// CurrentUserID returns the authenticated caller, or uuid.Nil outside
// AuthGuard.
func CurrentUserID(c echo.Context) uuid.UUID {
	userID, _ := c.Get(userIDKey).(uuid.UUID)
	return userID
}

// RateLimit applies a process wide token bucket. A non-positive rps
// disables it.
func RateLimit(rps float64, burst int) echo.MiddlewareFunc {
	if rps <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return ErrTooManyRequests
			}
			return next(c)
		}
	}
}
