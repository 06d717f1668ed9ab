// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses zerolog for logging and integrates with New Relic to instrument
// the codebase, forwarding logs, metrics, and traces when a license key is
// configured. Without a key every integration point degrades to a no-op.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/tradepost/backend/internal/config"
)

// LoggerService bundles the application logger with the optional New Relic
// application. It is the single owner of telemetry lifecycle: construction
// here, flush in Shutdown.
type LoggerService struct {
	logger zerolog.Logger
	nrApp  *newrelic.Application
}

// NewLoggerService builds the main zerolog logger per the observability
// config and, when a New Relic license key is present, the APM application
// with log forwarding wired into the logger's writer chain.
//
// New Relic failures never take the service down: the returned LoggerService
// simply carries a nil application and logging continues locally.
func NewLoggerService(cfg *config.Config) *LoggerService {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	// "console" is for humans during development; everything else gets the
	// raw JSON lines log pipelines expect.
	var writer io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	nrApp, nrErr := newRelicApplication(cfg)

	// The zerologWriter integration parses each JSON line on its way to the
	// underlying writer and forwards it to New Relic, keeping local output
	// untouched.
	if nrApp != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		zw := zerologWriter.New(writer, nrApp)
		writer = &zw
	}

	log := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	if nrErr != nil {
		log.Warn().Err(nrErr).Msg("New Relic initialization failed, telemetry disabled")
	}

	return &LoggerService{
		logger: log,
		nrApp:  nrApp,
	}
}

// newRelicApplication constructs the APM application, or (nil, nil) when no
// license key is configured.
func newRelicApplication(cfg *config.Config) (*newrelic.Application, error) {
	nrCfg := cfg.Observability.NewRelic
	if nrCfg.LicenseKey == "" {
		return nil, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nrCfg.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(nrCfg.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(nrCfg.DistributedTracingEnabled),
	}
	if nrCfg.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	return newrelic.NewApplication(opts...)
}

// GetLogger returns the application logger.
func (s *LoggerService) GetLogger() *zerolog.Logger {
	return &s.logger
}

// GetApplication returns the New Relic application, or nil when telemetry
// is disabled. Callers must tolerate nil.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.nrApp
}

// Shutdown flushes buffered telemetry. Blocks up to timeout.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// WithTraceContext returns a child logger annotated with the transaction's
// trace and span ids, so log lines can be correlated with distributed traces.
// A nil transaction (or one without metadata) returns the logger unchanged.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}

	metadata := txn.GetTraceMetadata()
	ctx := log.With()
	if metadata.TraceID != "" {
		ctx = ctx.Str("trace.id", metadata.TraceID)
	}
	if metadata.SpanID != "" {
		ctx = ctx.Str("span.id", metadata.SpanID)
	}
	return ctx.Logger()
}
