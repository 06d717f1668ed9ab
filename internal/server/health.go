package server

import (
	"context"
	"time"

	"github.com/tradepost/backend/internal/config"
)

// StartHealthMonitor launches the background loop that pings the
// configured dependencies on an interval. Failures are logged and, when
// the agent is running, recorded as custom events so alerting can fire
// before users notice. The /status endpoint runs its own on-demand
// checks; this loop exists for the gaps between requests.
//
// The loop stops when ctx is canceled. It is a no-op when health checks
// are disabled.
func (s *Server) StartHealthMonitor(ctx context.Context) {
	hc := s.Config.Observability.HealthChecks
	if !hc.Enabled {
		return
	}

	go s.healthLoop(ctx, hc)
}

func (s *Server) healthLoop(ctx context.Context, hc config.HealthChecksConfig) {
	s.Logger.Info().
		Dur("interval", hc.Interval).
		Strs("checks", hc.Checks).
		Msg("Starting dependency health monitor")

	ticker := time.NewTicker(hc.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runHealthChecks(hc)
		}
	}
}

func (s *Server) runHealthChecks(hc config.HealthChecksConfig) {
	for _, name := range hc.Checks {
		checkCtx, cancel := context.WithTimeout(context.Background(), hc.Timeout)

		var err error
		switch name {
		case "database":
			err = s.DB.Pool.Ping(checkCtx)
		case "redis":
			err = s.Redis.Ping(checkCtx).Err()
		default:
			s.Logger.Warn().Str("check", name).Msg("Unknown health check configured, skipping")
		}
		cancel()

		if err == nil {
			continue
		}

		s.Logger.Warn().
			Str("check", name).
			Err(err).
			Msg("Dependency health check failed")

		if app := s.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("DependencyHealthCheckFailed", map[string]interface{}{
				"check": name,
				"error": err.Error(),
			})
		}
	}
}
