package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"blackpot/internal/cache"
	apperrors "blackpot/internal/errors"
	"blackpot/internal/metrics"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimit caps requests per client IP with a fixed window counter in
// Redis. The counter client fails open when Redis is unavailable, so an
// outage degrades to no limiting rather than blocking traffic.
func RateLimit(counter *cache.Client, window time.Duration, max int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rateLimitKeyPrefix + c.RealIP()
			count, _ := counter.Incr(c.Request().Context(), key, window)
			if count > int64(max) {
				metrics.RateLimitedTotal.Inc()
				return c.JSON(http.StatusTooManyRequests, apperrors.ErrorResponse{
					Status:  "error",
					Code:    http.StatusTooManyRequests,
					Error:   "RATE_LIMIT_EXCEEDED",
					Message: "Too many requests, please try again later",
				})
			}
			return next(c)
		}
	}
}
