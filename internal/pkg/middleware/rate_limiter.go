package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ciatoslog/dispatch/internal/pkg/constants"
	"github.com/ciatoslog/dispatch/internal/pkg/database"
	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/utils"
	"github.com/labstack/echo/v4"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Redis    *database.RedisClient
	Resource string        // first segment of the Redis key
	Limit    int           // Maximum number of requests
	Period   time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a fixed-window, per client IP rate limiter.
// Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, c.RealIP())

			count, ttl, err := config.Redis.Incr(c.Request().Context(), key, config.Period)
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			header := c.Response().Header()
			header.Set(constants.HeaderRateLimit, strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				header.Set(constants.HeaderRateRemaining, "0")
				header.Set(constants.HeaderRateReset, strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				header.Set(echo.HeaderRetryAfter, strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			header.Set(constants.HeaderRateRemaining, strconv.FormatInt(int64(config.Limit)-count, 10))
			return next(c)
		}
	}
}
