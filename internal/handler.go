package internal

// Handler declares routes on a router.
//
// Example:
//
//	type ReportHandler struct {
//	    sender mailer.Sender
//	}
//
//	func (h *ReportHandler) Routes(r leadmail.Router) {
//	    r.POST("/api/send-pdf", h.send)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// It receives a Context and returns an error.
// Returning a non-nil error triggers the app's error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect/modify the request, short-circuit processing,
// or wrap the response.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
