package resend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/huisverkoopklaar/leadmail/pkg/mailer"
)

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
// An invalid BaseURL is reported here rather than on the first send.
func New(cfg Config) (*Sender, error) {
	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("resend: invalid base url: %w", err)
		}
		client.BaseURL = u
	}

	return &Sender{
		client: client,
		config: cfg,
	}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
	if !s.config.Configured() {
		return nil, fmt.Errorf("resend: %w", mailer.ErrNotConfigured)
	}
	if err := email.Validate(); err != nil {
		return nil, fmt.Errorf("resend: %w", err)
	}

	from := email.From
	if from == "" {
		from = s.config.From
	}

	req := &resend.SendEmailRequest{
		From:    mailer.Recipient(email.FromName, from),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	if len(email.Attachments) > 0 {
		attachments, err := convertAttachments(email.Attachments)
		if err != nil {
			return nil, fmt.Errorf("resend: %w", err)
		}
		req.Attachments = attachments
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("resend: failed to send email: %w", err)
	}

	receipt := &mailer.Receipt{ID: resp.Id}
	if raw, err := json.Marshal(resp); err == nil {
		receipt.Raw = raw
	}
	return receipt, nil
}

func convertAttachments(attachments []mailer.Attachment) ([]*resend.Attachment, error) {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		content, err := a.Bytes()
		if err != nil {
			return nil, err
		}
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
			Path:        a.URL,
		}
	}
	return result, nil
}
