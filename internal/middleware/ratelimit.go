package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"storefront-bff/pkg/cache"
)

// RateLimiter applies a fixed-window per-IP limit backed by the cache
// client. The window starts on the first request from an IP and resets when
// the key expires.
func RateLimiter(client cache.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "rate-limit:" + c.RealIP()

			count, err := client.GetInt(ctx, key)
			if err == cache.ErrCacheMiss {
				if err := client.Set(ctx, key, 1, window); err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError)
				}
				c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
				return next(c)
			} else if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError)
			}

			if count >= limit {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
			}

			if err := client.Incr(ctx, key); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError)
			}
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
			return next(c)
		}
	}
}
