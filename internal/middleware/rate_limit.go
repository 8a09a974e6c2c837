package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitMiddleware enforces a fixed-window per-client request limit backed
// by Redis. The scan endpoints are unauthenticated, so the window is keyed by
// route and client IP. The limiter fails open: a missing or unreachable Redis
// never blocks traffic.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if redisClient == nil {
				return next(c)
			}

			key := fmt.Sprintf("rate_limit:%s:%s", c.Path(), c.RealIP())

			ctx := c.Request().Context()
			count, err := redisClient.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("rate limit check failed, allowing request",
					zap.String("key", key), zap.Error(err))
				return next(c)
			}

			if count == 1 {
				redisClient.Expire(ctx, key, window)
			}

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
