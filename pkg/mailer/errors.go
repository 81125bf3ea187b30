package mailer

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNotConfigured indicates the provider API key is missing.
	ErrNotConfigured = errors.New("mail provider not configured")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")
)

// ProviderError is returned when a provider answers with a non-2xx status.
// Body is the provider's response, always valid JSON.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       json.RawMessage
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, string(e.Body))
}

// Unwrap lets errors.Is match ErrSendFailed.
func (e *ProviderError) Unwrap() error {
	return ErrSendFailed
}

// AsProviderError extracts the ProviderError from an error if present.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
