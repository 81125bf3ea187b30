package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message.
	// Returns ErrNotConfigured when the provider has no credentials,
	// a *ProviderError when the provider rejected the request, or a
	// transport error.
	Send(ctx context.Context, email *Email) (*Receipt, error)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) (*Receipt, error)

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, email *Email) (*Receipt, error) {
	return f(ctx, email)
}
