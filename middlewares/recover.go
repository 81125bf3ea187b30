package middlewares

import (
	"runtime"

	"github.com/huisverkoopklaar/leadmail/internal"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures the recover middleware.
type RecoverConfig struct {
	StackSize         int  // Max stack trace size (default: 4096)
	DisablePrintStack bool // Disable stack trace in logs
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverStackSize sets the maximum stack trace size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.StackSize = size
	}
}

// WithRecoverDisablePrintStack disables including stack trace in logs.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// Recover returns middleware that recovers from panics.
// It logs the panic and returns a PanicError to be handled by the global ErrorHandler,
// which renders it as a 500. A panic inside the PDF renderer or a provider
// client therefore never takes the process down.
// Request ID is automatically included via RequestIDExtractor() if configured.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := &RecoverConfig{
		StackSize: DefaultStackSize,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					attrs := []any{"panic", r, "method", c.Request().Method, "path", c.Request().URL.Path}

					var stack []byte
					if !cfg.DisablePrintStack {
						size := cfg.StackSize
						if size <= 0 {
							size = DefaultStackSize
						}
						stack = make([]byte, size)
						stack = stack[:runtime.Stack(stack, false)]
						attrs = append(attrs, "stack", string(stack))
					}

					c.LogError("panic recovered", attrs...)

					err = &PanicError{
						Value: r,
						Stack: stack,
					}
				}
			}()

			return next(c)
		}
	}
}
