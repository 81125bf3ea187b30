package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/huisverkoopklaar/leadmail/pkg/mailer"
)

const providerName = "brevo"

// maxResponseBytes caps how much of a provider response is buffered.
const maxResponseBytes = 1 << 20

// Sender implements mailer.Sender using the Brevo transactional email API.
type Sender struct {
	client   *http.Client
	endpoint string
	config   Config
}

// Option configures the Sender.
type Option func(*Sender)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Sender) {
		if c != nil {
			s.client = c
		}
	}
}

// New creates a new Brevo sender.
func New(cfg Config, opts ...Option) *Sender {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	s := &Sender{
		client:   http.DefaultClient,
		endpoint: strings.TrimSuffix(base, "/") + "/smtp/email",
		config:   cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type attachment struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content,omitempty"`
	URL     string `json:"url,omitempty"`
}

type payload struct {
	Sender      address           `json:"sender"`
	To          []address         `json:"to"`
	CC          []address         `json:"cc,omitempty"`
	BCC         []address         `json:"bcc,omitempty"`
	ReplyTo     *address          `json:"replyTo,omitempty"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"htmlContent,omitempty"`
	TextContent string            `json:"textContent,omitempty"`
	Attachment  []attachment      `json:"attachment,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

type response struct {
	MessageID string `json:"messageId"`
}

// Send implements mailer.Sender.
// A non-2xx answer is returned as *mailer.ProviderError carrying Brevo's
// status and JSON body.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
	if !s.config.Configured() {
		return nil, fmt.Errorf("brevo: %w", mailer.ErrNotConfigured)
	}
	if err := email.Validate(); err != nil {
		return nil, fmt.Errorf("brevo: %w", err)
	}

	body, err := json.Marshal(buildPayload(email))
	if err != nil {
		return nil, fmt.Errorf("brevo: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("brevo: build request: %w", err)
	}
	req.Header.Set("api-key", s.config.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("brevo: send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("brevo: read response: %w", err)
	}
	raw := mailer.NormalizeJSON(data)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &mailer.ProviderError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       raw,
		}
	}

	var parsed response
	_ = json.Unmarshal(raw, &parsed)

	return &mailer.Receipt{ID: parsed.MessageID, Raw: raw}, nil
}

func buildPayload(email *mailer.Email) payload {
	p := payload{
		Sender:      address{Email: email.From, Name: email.FromName},
		To:          addresses(email.To),
		CC:          addresses(email.CC),
		BCC:         addresses(email.BCC),
		Subject:     email.Subject,
		HTMLContent: email.HTML,
		TextContent: email.Text,
		Headers:     email.Headers,
	}
	if email.ReplyTo != "" {
		p.ReplyTo = &address{Email: email.ReplyTo}
	}
	for _, a := range email.Attachments {
		p.Attachment = append(p.Attachment, attachment{
			Name:    a.Filename,
			Content: a.Base64(),
			URL:     a.URL,
		})
	}
	return p
}

// addresses keeps order and duplicates; empty entries are dropped.
func addresses(list []string) []address {
	var out []address
	for _, e := range list {
		if e == "" {
			continue
		}
		out = append(out, address{Email: e})
	}
	return out
}
