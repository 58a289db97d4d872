package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
// An empty DSN disables the integration.
type SentryConfig struct {
	DSN         string
	Environment string
	// MinLevel is the lowest level kept as a Sentry log entry. Errors always
	// create issues.
	MinLevel slog.Level
}

// WithSentry forwards records to Sentry in addition to the local output.
// If the SDK fails to initialize, the failure is logged locally and the
// logger keeps working without Sentry.
func WithSentry(cfg SentryConfig) Option {
	return func(o *options) {
		o.sentry = cfg
	}
}

// Flush waits up to timeout for buffered Sentry events to be sent.
// It returns immediately when Sentry was never initialized.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

func newSentryHandler(cfg SentryConfig) (slog.Handler, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		return nil, errors.Join(ErrSentryInit, err)
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background()), nil
}
