package handler

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hub-service/internal/infrastructure"
)

type ServerOptions struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewServer builds the echo instance with middleware and every route.
func NewServer(h *Handler, jwtService *infrastructure.JWTService, opts ServerOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("%s %s %d %s id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))
	e.Use(RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))

	guard := AuthGuard(jwtService)

	e.GET("/", h.Health)

	api := e.Group("/api")
	api.POST("/users", h.RegisterUser)
	api.POST("/auth", h.LoginUser)
	api.GET("/auth", h.GetAuthenticatedUser, guard)

	profile := api.Group("/profile")
	profile.GET("", h.ListProfiles)
	profile.POST("", h.UpsertProfile, guard)
	profile.DELETE("", h.DeleteAccount, guard)
	profile.GET("/me", h.GetMyProfile, guard)
	profile.GET("/user/:user_id", h.GetProfileByUser)
	profile.PUT("/experience", h.AddExperience, guard)
	profile.DELETE("/experience/:exp_id", h.DeleteExperience, guard)
	profile.PUT("/education", h.AddEducation, guard)
	profile.DELETE("/education/:edu_id", h.DeleteEducation, guard)

	posts := api.Group("/posts", guard)
	posts.GET("", h.ListPosts)
	posts.POST("", h.CreatePost)
	posts.GET("/:id", h.GetPost)
	posts.DELETE("/:id", h.DeletePost)
	posts.PUT("/like/:id", h.LikePost)
	posts.PUT("/unlike/:id", h.UnlikePost)
	posts.POST("/comment/:id", h.AddComment)
	posts.DELETE("/comment/:id/:comment_id", h.DeleteComment)

	return e
}
