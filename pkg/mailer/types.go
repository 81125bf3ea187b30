package mailer

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers     map[string]string // Custom headers
	Subject     string            // Email subject
	HTML        string            // HTML body content
	Text        string            // Plain text alternative
	From        string            // Sender address; providers fall back to their configured sender
	FromName    string            // Sender display name
	ReplyTo     string            // Reply-to address
	To          []string          // Recipients (at least one required)
	CC          []string          // Carbon copy recipients
	BCC         []string          // Blind carbon copy recipients
	Attachments []Attachment      // File attachments
}

// Validate checks the fields every provider requires.
func (e *Email) Validate() error {
	if e == nil {
		return ErrNoRecipient
	}
	for _, to := range e.To {
		if to != "" {
			return nil
		}
	}
	return ErrNoRecipient
}

// Attachment represents an email attachment.
//
// Content holds raw bytes. Attachments relayed from a client arrive already
// base64-encoded; Encoded carries that text verbatim so it reaches the
// provider unchanged. URL lets providers that support it fetch the file.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Optional Content-ID for inline attachments
	Content     []byte // Raw file content
	Encoded     string // Base64 content, used as-is when set
	URL         string // Remote file location
}

// Base64 returns the attachment content in standard base64.
func (a Attachment) Base64() string {
	if a.Encoded != "" {
		return a.Encoded
	}
	if len(a.Content) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(a.Content)
}

// Bytes returns the raw attachment content, decoding Encoded when needed.
func (a Attachment) Bytes() ([]byte, error) {
	if a.Encoded == "" {
		return a.Content, nil
	}
	data, err := base64.StdEncoding.DecodeString(a.Encoded)
	if err != nil {
		return nil, fmt.Errorf("decode attachment %q: %w", a.Filename, err)
	}
	return data, nil
}

// Receipt is the provider's answer to an accepted send.
type Receipt struct {
	// ID is the provider message id, empty if the provider returned none.
	ID string
	// Raw is the provider's response body as JSON.
	Raw json.RawMessage
}

// NormalizeJSON returns body when it is valid JSON and an empty object otherwise.
// Provider responses are relayed to callers, so they must always encode.
func NormalizeJSON(body []byte) json.RawMessage {
	if len(body) == 0 || !json.Valid(body) {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(body)
}
