package middlewares

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/huisverkoopklaar/leadmail/internal"
)

// RateLimitConfig configures the rate limit middleware.
type RateLimitConfig struct {
	// KeyFunc picks the bucket for a request. Defaults to the client IP,
	// honouring X-Forwarded-For and X-Real-IP set by the edge proxy.
	KeyFunc httprate.KeyFunc
	// Message is the JSON error returned with 429.
	Message string
}

// RateLimitOption configures RateLimitConfig.
type RateLimitOption func(*RateLimitConfig)

// WithRateLimitKey overrides how requests are grouped.
func WithRateLimitKey(fn httprate.KeyFunc) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.KeyFunc = fn
	}
}

// WithRateLimitMessage sets the error message of the 429 response.
func WithRateLimitMessage(msg string) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.Message = msg
	}
}

// RateLimit allows at most limit requests per window for each key.
// Requests over the limit get 429 with a Retry-After header and are never
// passed to the handler. A limit of zero or less disables the middleware.
func RateLimit(limit int, window time.Duration, opts ...RateLimitOption) internal.Middleware {
	cfg := &RateLimitConfig{
		KeyFunc: httprate.KeyByRealIP,
		Message: "Too many requests",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if limit <= 0 || window <= 0 {
		return func(next internal.HandlerFunc) internal.HandlerFunc { return next }
	}

	body, _ := json.Marshal(internal.ErrorResponse{Error: cfg.Message})
	limiter := httprate.NewRateLimiter(limit, window,
		httprate.WithKeyFuncs(cfg.KeyFunc),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write(append(body, '\n'))
		}),
	)

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			var err error
			passed := false
			limiter.Handler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				passed = true
				err = next(c)
			})).ServeHTTP(c.Response(), c.Request())

			if !passed {
				c.LogWarn("rate limit exceeded", "path", c.Request().URL.Path)
			}
			return err
		}
	}
}
