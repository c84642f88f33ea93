package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/ratelimit"
)

// RateLimiter rejects clients that exceed limiter's budget. A failing
// backend lets the request through.
func RateLimiter(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Printf("rate limiter unavailable: %v", err)
				return next(c)
			}

			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
