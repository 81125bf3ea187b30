// Package middlewares provides HTTP middleware for leadmail applications.
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing. It reuses an
// upstream ID (X-Request-ID, X-Correlation-ID, X-Vercel-Id) or generates a UUID.
//
// Use RequestIDExtractor() with WithLogger for automatic request_id in all logs:
//
//	app := leadmail.New(
//	    leadmail.WithLogger("api", middlewares.RequestIDExtractor()),
//	    leadmail.WithMiddleware(
//	        middlewares.RequestID(),
//	    ),
//	)
//
// # Recover
//
// Recover catches panics and converts them to a PanicError, which the
// default JSONErrorHandler renders as a 500.
//
// # Request Logger
//
// RequestLogger writes one structured line per request with method, path,
// status, size and duration. Probe paths can be skipped:
//
//	middlewares.RequestLogger(middlewares.WithSkipPaths("/health/live", "/health/ready"))
//
// # CORS
//
// CORS handles Cross-Origin Resource Sharing headers and answers preflight
// (OPTIONS) requests with 204. The relay endpoint is called from pages on
// other hosts and from tools that send no Origin at all, so it uses
// WithAlwaysEmit to send the headers on every response:
//
//	r.Route("/api/send", func(r leadmail.Router) {
//	    r.Use(middlewares.CORS(
//	        middlewares.WithAllowMethods(http.MethodPost, http.MethodOptions),
//	        middlewares.WithAllowHeaders("Content-Type"),
//	        middlewares.WithMaxAge(0),
//	        middlewares.WithAlwaysEmit(),
//	    ))
//	    r.POST("/", h.send)
//	})
//
// Middleware registered inside Route also wraps the group's 404 and 405
// responses, so a GET on the relay still carries the CORS headers.
//
// # Recommended Middleware Order
//
//	leadmail.WithMiddleware(
//	    middlewares.RequestID(),     // First: assign ID for all subsequent logging
//	    middlewares.RequestLogger(), // Second: observe the final status
//	    middlewares.Recover(),       // Third: turn panics into errors
//	)
package middlewares
