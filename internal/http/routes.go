package http

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"task-manager.com/task-manager/internal/auth"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
	"task-manager.com/task-manager/internal/ratelimit"
)

func Register(e *echo.Echo, h *Handler, authenticator middleware.Authenticator, limiter ratelimit.Limiter) {
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		HandleError:  true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Printf("%s %s %d %s id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(middleware.RateLimiter(limiter))

	requireAccess := middleware.RequireToken(authenticator, auth.AccessToken)
	requireRefresh := middleware.RequireToken(authenticator, auth.RefreshToken)

	e.GET("/healthz", h.Health)

	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	e.POST("/refresh", h.Refresh, requireRefresh)

	e.GET("/", h.ListTasks)
	e.POST("/create_task", h.CreateTask, requireAccess)
	e.PUT("/update_task/:id", h.UpdateTask, requireAccess)
	e.DELETE("/delete_task/:id", h.DeleteTask, requireAccess)
}
