package internal

import (
	"errors"
	"net/http"
)

// HTTPError represents an HTTP error with all data needed for rendering.
// Message is always safe to show to callers; Detail is only rendered when
// the handler decided the caller may see it.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to users).
	Err error

	// Message is the user-facing error message.
	Message string

	// Detail is an optional extended description.
	Detail string

	// RequestID is the request tracking ID.
	RequestID string

	// Code is the HTTP status code (e.g., 404, 500).
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

func (e *HTTPError) StatusText() string {
	return http.StatusText(e.Code)
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

func WithDetail(detail string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Detail = detail
	}
}

func WithRequestID(id string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.RequestID = id
	}
}

func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Err = err
	}
}

// Convenience constructors for common HTTP errors.

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return newWithOptions(http.StatusBadRequest, message, opts)
}

func ErrMethodNotAllowed(message string, opts ...HTTPErrorOption) *HTTPError {
	return newWithOptions(http.StatusMethodNotAllowed, message, opts)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return newWithOptions(http.StatusNotFound, message, opts)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return newWithOptions(http.StatusInternalServerError, message, opts)
}

func newWithOptions(code int, message string, opts []HTTPErrorOption) *HTTPError {
	e := NewHTTPError(code, message)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsHTTPError reports whether err or any error it wraps is an HTTPError.
func IsHTTPError(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr)
}

// AsHTTPError extracts the HTTPError from an error if present.
// Returns nil if the error is not an HTTPError.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}

// ErrorResponse is the JSON body written by JSONErrorHandler.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// JSONErrorHandler renders handler errors as {"error": ..., "details": ...}.
// HTTPErrors keep their code and message; anything else becomes a 500 with
// a generic message. 5xx errors are logged with the underlying cause.
func JSONErrorHandler(c Context, err error) error {
	httpErr := AsHTTPError(err)
	if httpErr == nil {
		httpErr = ErrInternal(http.StatusText(http.StatusInternalServerError), WithError(err))
	}

	if httpErr.Code >= http.StatusInternalServerError {
		cause := err
		if httpErr.Err != nil {
			cause = httpErr.Err
		}
		c.LogError("request failed",
			"status", httpErr.Code,
			"error", cause.Error(),
		)
	}

	return c.JSON(httpErr.Code, ErrorResponse{
		Error:     httpErr.Message,
		Details:   httpErr.Detail,
		RequestID: httpErr.RequestID,
	})
}
