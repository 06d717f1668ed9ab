package config

import (
	"fmt"
	"time"
)

// ServiceName identifies this service in logs, traces and APM dashboards.
// It is forced at load time so nobody can configure it into chaos.
const ServiceName = "tradepost"

// ObservabilityConfig groups all configuration related to telemetry and
// runtime visibility:
//
//   - logging settings (format, level, thresholds)
//   - APM/tracing provider settings (New Relic here)
//   - periodic dependency health checks
//
// It hangs off Config.Observability as a pointer so the whole block is
// optional; missing pieces are filled by applyDefaults at load time.
type ObservabilityConfig struct {
	// ServiceName identifies this service in telemetry. Forced to the
	// package-level ServiceName constant at load time.
	ServiceName string `koanf:"service_name"`

	// Environment is a label used to split telemetry by environment
	// (production, staging, development, etc.). Forced from Primary.Env.
	Environment string `koanf:"environment"`

	// Logging config controls structured logger behavior.
	Logging LoggingConfig `koanf:"logging"`

	// NewRelic config controls APM and tracing features.
	NewRelic NewRelicConfig `koanf:"new_relic"`

	// HealthChecks config controls periodic dependency health checks.
	HealthChecks HealthChecksConfig `koanf:"health_checks"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	// Any logs below this level are ignored.
	Level string `koanf:"level"`

	// Format selects the output format for logs: "json" or "console".
	// JSON is the default so log pipelines get structured lines.
	Format string `koanf:"format"`

	// SlowQueryThreshold is a duration beyond which queries are logged as
	// slow. Supply parseable duration strings like "100ms" or "1s".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey means "not configured": the agent is skipped entirely
// and every instrumentation point degrades to a no-op.
type NewRelicConfig struct {
	// LicenseKey is the New Relic ingest key. Empty disables the agent.
	LicenseKey string `koanf:"license_key"`

	// AppLogForwardingEnabled forwards application logs to New Relic.
	AppLogForwardingEnabled bool `koanf:"app_log_forwarding_enabled"`

	// DistributedTracingEnabled enables distributed tracing so requests can
	// be traced across service boundaries.
	DistributedTracingEnabled bool `koanf:"distributed_tracing_enabled"`

	// DebugLogging enables debug output for the agent/integration.
	// Usually off in production to avoid noisy, mixed-format logs.
	DebugLogging bool `koanf:"debug_logging"`
}

// HealthChecksConfig controls periodic checks for dependencies.
//
// The server runs these in a background loop for proactive alerting; the
// /status endpoint does its own on-demand checks.
type HealthChecksConfig struct {
	// Enabled toggles health checking logic entirely.
	Enabled bool `koanf:"enabled"`

	// Interval is how frequently checks run.
	Interval time.Duration `koanf:"interval"`

	// Timeout is the max time allowed for a check run before it is
	// considered failed.
	Timeout time.Duration `koanf:"timeout"`

	// Checks is a list of check names to run. Known names: "database", "redis".
	Checks []string `koanf:"checks"`
}

// DefaultObservabilityConfig provides a safe set of defaults.
//
// Used when Config.Observability is absent entirely. Defaults aim to be
// sensible for local dev while not breaking production.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		// Both of these are overwritten in Load: ServiceName is forced to
		// the constant, Environment derived from primary.env.
		ServiceName: ServiceName,
		Environment: "development",

		// info level avoids debug spam; json works well in log aggregators;
		// 100ms is a reasonable "hmm, maybe slow" boundary.
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},

		// LicenseKey stays empty (agent disabled) but forwarding/tracing are
		// pre-enabled so setting just the key lights everything up.
		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false,
		},

		// Check database + redis every 30 seconds, 5 seconds per run.
		HealthChecks: HealthChecksConfig{
			Enabled:  true,
			Interval: 30 * time.Second,
			Timeout:  5 * time.Second,
			Checks:   []string{"database", "redis"},
		},
	}
}

// applyDefaults fills the gaps a partially configured observability block
// leaves behind, so setting one env var does not force setting them all.
func (c *ObservabilityConfig) applyDefaults() {
	defaults := DefaultObservabilityConfig()

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	if c.Logging.SlowQueryThreshold == 0 {
		c.Logging.SlowQueryThreshold = defaults.Logging.SlowQueryThreshold
	}
	if c.HealthChecks.Interval == 0 {
		c.HealthChecks.Interval = defaults.HealthChecks.Interval
	}
	if c.HealthChecks.Timeout == 0 {
		c.HealthChecks.Timeout = defaults.HealthChecks.Timeout
	}
	if len(c.HealthChecks.Checks) == 0 {
		c.HealthChecks.Checks = defaults.HealthChecks.Checks
	}
}

// Validate applies rules that go beyond struct tags: enums, ranges and
// cross-field constraints.
//
// Returns nil if the configuration is valid, otherwise an error describing
// the first failure.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	// Enforce a strict set of log levels so typos like "inf" fail loudly
	// instead of silently degrading.
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %s (must be json or console)", c.Logging.Format)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	if c.HealthChecks.Enabled {
		if c.HealthChecks.Interval < time.Second {
			return fmt.Errorf("health check interval must be at least 1s")
		}
		if c.HealthChecks.Timeout < time.Second {
			return fmt.Errorf("health check timeout must be at least 1s")
		}
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// Defaults by environment when no level is set: "info" in production,
// "debug" in development. Otherwise returns the configured value.
func (c *ObservabilityConfig) GetLogLevel() string {
	switch c.Environment {
	case "production":
		if c.Logging.Level == "" {
			return "info"
		}
	case "development":
		if c.Logging.Level == "" {
			return "debug"
		}
	}

	return c.Logging.Level
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
