// Package internal provides the core types and implementation for the leadmail service kit.
//
// This package is internal and should not be used directly. Import
// "github.com/huisverkoopklaar/leadmail" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates HTTP routing, middleware, health endpoints and graceful shutdown
//   - Context: Request/response access, body helpers and request-scoped logging
//   - Router: Interface handlers use to declare routes
//   - Handler: Implemented by types that declare routes on a router
//   - HandlerFunc: Signature for route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Renders errors returned by handlers
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to mail
// senders and other code that expects a standard library context:
//
//	func (h *RelayHandler) send(c leadmail.Context) error {
//	    receipt, err := h.sender.Send(c, email)
//	    ...
//	}
//
// # Request Bodies
//
// Body reads the request body once, up to the configured limit
// (WithMaxBodyBytes), and caches it. BindJSON decodes the cached body, so a
// handler can inspect the raw bytes and still bind them afterwards.
//
// # Errors
//
// Handlers return errors instead of writing failure responses themselves.
// The default ErrorHandler is JSONErrorHandler, which renders an HTTPError as
//
//	{"error": "<message>", "details": "<detail>"}
//
// and turns any other error into a 500. Responses already written by the
// handler are left untouched.
package internal
