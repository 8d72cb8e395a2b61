package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ciatoslog/dispatch/internal/pkg/constants"
	"github.com/ciatoslog/dispatch/internal/pkg/database"
	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/utils"
	"github.com/labstack/echo/v4"
)

// IdempotencyConfig contains configuration for the idempotency guard
type IdempotencyConfig struct {
	Redis *database.RedisClient
	TTL   time.Duration
}

// IdempotencyMiddleware rejects a mutating request whose Idempotency-Key was
// already claimed on the same route within TTL. Requests without the header
// pass untouched. A request that fails releases its key so the client can
// retry it.
func IdempotencyMiddleware(config IdempotencyConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			idemKey := req.Header.Get(constants.HeaderIdempotencyKey)
			if idemKey == "" || req.Method == http.MethodGet || req.Method == http.MethodHead {
				return next(c)
			}

			route := req.Method + " " + c.Path()
			for i, name := range c.ParamNames() {
				route += " " + name + "=" + c.ParamValues()[i]
			}
			key := fmt.Sprintf(constants.KeyIdempotency, route, idemKey)

			claimed, err := config.Redis.SetNX(req.Context(), key, time.Now().Unix(), config.TTL)
			if err != nil {
				logger.Warn("Idempotency guard unavailable, allowing request",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}
			if !claimed {
				return utils.ConflictResponse(c, "duplicate request: idempotency key already used")
			}

			err = next(c)
			if err != nil || c.Response().Status >= http.StatusBadRequest {
				if delErr := config.Redis.Delete(context.Background(), key); delErr != nil {
					logger.Warn("Failed to release idempotency key",
						logger.String("key", key),
						logger.Err(delErr))
				}
			}
			return err
		}
	}
}
