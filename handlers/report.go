package handlers

import (
	"net/http"

	"github.com/huisverkoopklaar/leadmail"
	"github.com/huisverkoopklaar/leadmail/pkg/mailer"
	"github.com/huisverkoopklaar/leadmail/pkg/pdf"
	"github.com/huisverkoopklaar/leadmail/pkg/report"
)

// ReportHandler renders a valuation report to PDF and mails it.
type ReportHandler struct {
	policy   report.Policy
	sender   mailer.Sender
	renderer pdf.Renderer
	routes   routeOptions
}

// NewReportHandler creates the /api/send-pdf handler.
func NewReportHandler(policy report.Policy, sender mailer.Sender, renderer pdf.Renderer, opts ...Option) *ReportHandler {
	return &ReportHandler{
		policy:   policy,
		sender:   sender,
		renderer: renderer,
		routes:   buildRouteOptions(opts),
	}
}

// Routes implements leadmail.Handler.
func (h *ReportHandler) Routes(r leadmail.Router) {
	r.POST("/api/send-pdf", h.send, h.routes.middleware...)
}

type reportResponse struct {
	OK      bool    `json:"ok"`
	ID      *string `json:"id"`
	To      string  `json:"to"`
	ReplyTo string  `json:"reply_to"`
	From    string  `json:"from"`
	Forced  bool    `json:"forced"`
}

func (h *ReportHandler) send(c leadmail.Context) error {
	forced := h.policy.Forced(c.Request())
	// The caller may see internal error text only when it asked for it.
	reveal := forced || debugRequested(c.Query("debug"))

	body, err := c.Body()
	if err != nil {
		return serverError(err, reveal)
	}

	req := report.Decode(body)
	rcpt := h.policy.ResolveRecipients(req, forced)

	doc, err := h.renderer.Render(report.Lines(req))
	if err != nil {
		return serverError(err, reveal)
	}

	c.LogDebug("send-pdf recipients",
		"forced", forced,
		"payload_email", req.Email.String(),
		"to", rcpt.To,
		"reply_to", rcpt.ReplyTo,
		"from", rcpt.From,
	)

	email := &mailer.Email{
		From:    rcpt.From,
		To:      []string{rcpt.To},
		ReplyTo: rcpt.ReplyTo,
		Subject: report.Subject(req),
		Text:    report.BodyText,
		Attachments: []mailer.Attachment{{
			Filename:    report.Filename,
			ContentType: "application/pdf",
			Content:     doc,
		}},
	}
	if rcpt.BCC != "" {
		email.BCC = []string{rcpt.BCC}
	}

	receipt, err := h.sender.Send(c.Context(), email)
	if err != nil {
		return serverError(err, reveal)
	}

	resp := reportResponse{
		OK:      true,
		To:      rcpt.To,
		ReplyTo: rcpt.ReplyTo,
		From:    rcpt.From,
		Forced:  forced,
	}
	if receipt != nil && receipt.ID != "" {
		id := receipt.ID
		resp.ID = &id
	}

	c.LogInfo("report sent", "to", rcpt.To, "forced", forced)
	return c.JSON(http.StatusOK, resp)
}

func serverError(err error, reveal bool) error {
	opts := []leadmail.HTTPErrorOption{leadmail.WithError(err)}
	if reveal {
		opts = append(opts, leadmail.WithDetail(err.Error()))
	}
	return leadmail.ErrInternal(msgServerError, opts...)
}

func debugRequested(v string) bool {
	return v == "1" || v == "true"
}
