package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/huisverkoopklaar/leadmail"
	"github.com/huisverkoopklaar/leadmail/config"
	"github.com/huisverkoopklaar/leadmail/middlewares"
	"github.com/huisverkoopklaar/leadmail/pkg/mailer"
)

// Relay defaults applied when the request leaves a field empty.
const (
	DefaultRelaySubject = "Woningwaarde rapport"
	DefaultRelayHTML    = "<p>Uw woningwaarde-rapport is gereed.</p>"
)

// RelayHandler forwards arbitrary messages to the email provider.
type RelayHandler struct {
	cfg      config.Relay
	sender   mailer.Sender
	validate *validator.Validate
	routes   routeOptions
}

// NewRelayHandler creates the /api/send handler.
func NewRelayHandler(cfg config.Relay, sender mailer.Sender, opts ...Option) *RelayHandler {
	return &RelayHandler{
		cfg:      cfg,
		sender:   sender,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		routes:   buildRouteOptions(opts),
	}
}

// Routes implements leadmail.Handler.
// CORS runs inside the group so 4xx, 5xx and 405 answers carry the headers too.
func (h *RelayHandler) Routes(r leadmail.Router) {
	origins := h.cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Route("/api/send", func(r leadmail.Router) {
		r.Use(middlewares.CORS(
			middlewares.WithAllowOrigins(origins...),
			middlewares.WithAllowMethods(http.MethodPost, http.MethodOptions),
			middlewares.WithAllowHeaders("Content-Type"),
			middlewares.WithMaxAge(0),
			middlewares.WithAlwaysEmit(),
		))
		r.POST("/", h.send, h.routes.middleware...)
		r.OPTIONS("/", h.preflight)
	})
}

// jsonString accepts a JSON string; any other type decodes as empty.
type jsonString string

func (s *jsonString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = jsonString(v)
	return nil
}

type relayAttachment struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

type sendRequest struct {
	To          jsonString      `json:"to" validate:"required"`
	Subject     jsonString      `json:"subject"`
	HTML        jsonString      `json:"html"`
	Text        jsonString      `json:"text"`
	BCC         json.RawMessage `json:"bcc"`
	Attachments json.RawMessage `json:"attachments"`
}

type relayResponse struct {
	OK    bool            `json:"ok"`
	Brevo json.RawMessage `json:"brevo"`
}

type relayProviderError struct {
	Error json.RawMessage `json:"error"`
}

func (h *RelayHandler) preflight(c leadmail.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (h *RelayHandler) send(c leadmail.Context) error {
	body, err := c.Body()
	if err != nil {
		return leadmail.ErrBadRequest(msgInvalidJSON, leadmail.WithError(err))
	}

	req, err := decodeSendRequest(body)
	if err != nil {
		return leadmail.ErrBadRequest(msgInvalidJSON, leadmail.WithError(err))
	}
	if err := h.validate.Struct(req); err != nil {
		return leadmail.ErrBadRequest(msgMissingTo, leadmail.WithError(err))
	}

	email := h.buildEmail(req)

	receipt, err := h.sender.Send(c.Context(), email)
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			return leadmail.ErrInternal(msgMissingBrevoKey, leadmail.WithError(err))
		}
		if pe, ok := mailer.AsProviderError(err); ok {
			c.LogWarn("relay rejected by provider", "status", pe.StatusCode)
			return c.JSON(pe.StatusCode, relayProviderError{Error: pe.Body})
		}
		return leadmail.ErrInternal(err.Error(), leadmail.WithError(err))
	}

	raw := json.RawMessage(`{}`)
	if receipt != nil && len(receipt.Raw) > 0 {
		raw = receipt.Raw
	}

	c.LogInfo("relay sent", "to", string(req.To), "bcc", len(email.BCC))
	return c.JSON(http.StatusOK, relayResponse{OK: true, Brevo: raw})
}

func (h *RelayHandler) buildEmail(req sendRequest) *mailer.Email {
	subject := string(req.Subject)
	if subject == "" {
		subject = DefaultRelaySubject
	}
	html := string(req.HTML)
	if html == "" {
		html = DefaultRelayHTML
	}

	bcc := stringList(req.BCC)
	if h.cfg.BCCEmail != "" {
		bcc = append(bcc, h.cfg.BCCEmail)
	}

	return &mailer.Email{
		From:        h.cfg.FromEmail,
		FromName:    h.cfg.FromName,
		To:          []string{string(req.To)},
		BCC:         bcc,
		Subject:     subject,
		HTML:        html,
		Text:        string(req.Text),
		Attachments: attachmentList(req.Attachments),
	}
}

// decodeSendRequest accepts a JSON object or a JSON string holding one.
// Valid JSON that is not an object decodes as an empty request.
func decodeSendRequest(body []byte) (sendRequest, error) {
	var req sendRequest

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return req, nil
	}
	if !json.Valid(body) {
		return req, errors.New("request body is not valid JSON")
	}

	if body[0] == '"' {
		var inner string
		if err := json.Unmarshal(body, &inner); err != nil {
			return req, err
		}
		body = bytes.TrimSpace([]byte(inner))
		if len(body) == 0 {
			return req, nil
		}
		if !json.Valid(body) {
			return req, errors.New("request body string is not valid JSON")
		}
	}

	if body[0] != '{' {
		return req, nil
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return sendRequest{}, err
	}
	return req, nil
}

// stringList keeps the non-empty strings of a JSON array in order.
// Anything that is not an array yields nil.
func stringList(raw json.RawMessage) []string {
	var items []any
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}

	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// attachmentList decodes client attachments. Content is already base64
// and is forwarded untouched. Entries that are not objects are skipped.
func attachmentList(raw json.RawMessage) []mailer.Attachment {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}

	var out []mailer.Attachment
	for _, item := range items {
		var a relayAttachment
		if json.Unmarshal(item, &a) != nil {
			continue
		}
		if a.Name == "" && a.Content == "" && a.URL == "" {
			continue
		}
		out = append(out, mailer.Attachment{
			Filename: a.Name,
			Encoded:  a.Content,
			URL:      a.URL,
		})
	}
	return out
}
