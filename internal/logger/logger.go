// Package logger configures the application's logging, monitoring, and
// observability.
//
// It uses zerolog for structured logging and optionally integrates with
// New Relic to forward logs and traces. When New Relic is not
// configured (empty license key), every consumer degrades to plain
// zerolog with no telemetry side effects.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"mathsvc/internal/config"
)

// LoggerService owns the optional New Relic application instance.
//
// It exists so the rest of the app never checks license keys or agent
// state: GetApplication returns nil when New Relic is disabled, and all
// call sites treat nil as "no telemetry".
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes the New Relic agent when a license key
// is configured.
//
// Returns a LoggerService with a nil application (not an error) when
// New Relic is disabled, so startup does not depend on telemetry.
func NewLoggerService(cfg *config.Config, logger *zerolog.Logger) (*LoggerService, error) {
	nr := cfg.Observability.NewRelic

	if nr.LicenseKey == "" {
		logger.Info().Msg("new relic disabled, telemetry is a no-op")
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
	}
	if nr.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize new relic: %w", err)
	}

	logger.Info().
		Str("service", cfg.Observability.ServiceName).
		Str("environment", cfg.Observability.Environment).
		Msg("new relic initialized")

	return &LoggerService{nrApp: app}, nil
}

// GetApplication returns the New Relic application instance, or nil
// when the integration is disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.nrApp
}

// Shutdown flushes pending telemetry. Safe to call when disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// New constructs the application's root zerolog logger from the
// observability config.
//
// Format "console" writes human-friendly output to stderr; "json"
// writes machine-parseable lines to stdout. When the loggerService
// carries a New Relic app and log forwarding is enabled, the JSON
// output is wrapped so log lines are decorated with linking metadata
// and forwarded to New Relic.
func New(cfg *config.Config, loggerService *LoggerService) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer
	switch cfg.Observability.Logging.Format {
	case "console":
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	default:
		out = os.Stdout
		if loggerService != nil && loggerService.GetApplication() != nil &&
			cfg.Observability.NewRelic.AppLogForwardingEnabled {
			out = zerologWriter.New(os.Stdout, loggerService.GetApplication())
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()
}

// WithTraceContext returns a child logger carrying the transaction's
// trace.id and span.id fields so log lines correlate with traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetTraceMetadata()
	builder := logger.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}
