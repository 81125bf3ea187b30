package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/huisverkoopklaar/leadmail/internal"
)

// RequestLoggerConfig configures the request logger middleware.
type RequestLoggerConfig struct {
	// SkipPaths are request paths that are never logged (e.g. probes).
	SkipPaths []string
}

// RequestLoggerOption configures RequestLoggerConfig.
type RequestLoggerOption func(*RequestLoggerConfig)

// WithSkipPaths excludes the given paths from request logging.
func WithSkipPaths(paths ...string) RequestLoggerOption {
	return func(cfg *RequestLoggerConfig) {
		cfg.SkipPaths = append(cfg.SkipPaths, paths...)
	}
}

// RequestLogger returns middleware that logs one line per request after the
// handler returns: method, path, status, response size and duration.
// Server errors and handler errors log at error level, client errors at warn.
// Request ID is automatically included via RequestIDExtractor() if configured.
func RequestLogger(opts ...RequestLoggerOption) internal.Middleware {
	cfg := &RequestLoggerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if _, ok := skip[c.Request().URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := http.StatusOK
			var size int64
			if rw != nil {
				status = rw.Status()
				size = rw.Size()
			}
			// Errors are rendered by the app after this middleware returns.
			if err != nil && (rw == nil || !rw.Written()) {
				status = http.StatusInternalServerError
				if httpErr := internal.AsHTTPError(err); httpErr != nil {
					status = httpErr.Code
				}
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Int64("size", size),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			switch {
			case status >= http.StatusInternalServerError:
				c.LogError("request completed", attrs...)
			case status >= http.StatusBadRequest:
				c.LogWarn("request completed", attrs...)
			default:
				c.LogInfo("request completed", attrs...)
			}

			return err
		}
	}
}
