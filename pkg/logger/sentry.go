package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" env-default:"production"`
	// Level is the minimum level written to stdout.
	Level slog.Level
	// Text switches stdout to slog's text format for local development.
	Text bool
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level
}

// NewWithSentry creates a logger that sends logs to both stdout and Sentry.
// If DSN is empty, only stdout logging is enabled (graceful fallback for local dev).
// Context extractors are applied to logs sent to both destinations.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	var stdoutHandler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.Text {
		stdoutHandler = slog.NewTextHandler(os.Stdout, opts)
	}

	// If no DSN, fall back to stdout only
	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(stdoutHandler, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdoutHandler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(stdoutHandler, extractors...))
	}

	// Determine which levels to send to Sentry
	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel, // Errors create Issues in Sentry
		LogLevel:   logLevel,   // Logs stored for context/search
	}.NewSentryHandler(context.Background())

	combinedHandler := newMultiHandler(stdoutHandler, sentryHandler)

	// Wrap with decorator so context extractors work for both destinations
	return slog.New(NewLogHandlerDecorator(combinedHandler, extractors...))
}

// FlushSentry waits for buffered Sentry events until ctx expires.
// Safe to call when Sentry was never initialized.
// Matches the shutdown hook signature, and is also called at the end of
// each Lambda invocation.
func FlushSentry(ctx context.Context) error {
	timeout := 2 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if timeout <= 0 {
		return ctx.Err()
	}
	sentry.Flush(timeout)
	return nil
}
