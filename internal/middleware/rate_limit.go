package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/tradepost/backend/internal/errs"
	"github.com/tradepost/backend/internal/server"
)

// RateLimitMiddleware enforces a per-client request budget on the API
// group and records each rejection as telemetry.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns the rate limiting middleware, keyed by client IP with a
// token bucket per identifier. Disabled config returns a pass-through
// so routes do not need to know whether limiting is on.
//
// The in-memory store means budgets are per process; multi-instance
// deployments get N times the configured rate until this moves to a
// shared store.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.Server.RateLimit
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(cfg.RPS),
		Burst: cfg.Burst,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())

			logger := GetLogger(c)
			logger.Warn().
				Str("identifier", identifier).
				Str("path", c.Path()).
				Msg("Rate limit exceeded")

			return errs.NewTooManyRequestsError("Rate limit exceeded, slow down", false)
		},
	})
}

// RecordRateLimitHit emits a custom event when the agent is running so
// sustained abuse shows up in dashboards.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
