package brevo_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huisverkoopklaar/leadmail/pkg/mailer"
	"github.com/huisverkoopklaar/leadmail/pkg/mailer/brevo"
)

type captured struct {
	mu      sync.Mutex
	called  bool
	method  string
	path    string
	headers http.Header
	body    map[string]any
}

func (c *captured) snapshot() (bool, string, string, http.Header, map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.called, c.method, c.path, c.headers, c.body
}

func newBrevoServer(t *testing.T, status int, response string) (*httptest.Server, *captured) {
	t.Helper()

	c := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		c.mu.Lock()
		c.called = true
		c.method = r.Method
		c.path = r.URL.Path
		c.headers = r.Header.Clone()
		_ = json.Unmarshal(data, &c.body)
		c.mu.Unlock()

		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func relayEmail() *mailer.Email {
	return &mailer.Email{
		From:     "j.dekker@huisverkoopklaar.nl",
		FromName: "Huis Verkoop Klaar",
		To:       []string{"jan@example.nl"},
		Subject:  "Uw rapport",
		HTML:     "<p>Hallo</p>",
		Text:     "Hallo",
	}
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("posts payload and returns message id", func(t *testing.T) {
		t.Parallel()

		srv, c := newBrevoServer(t, http.StatusCreated, `{"messageId":"<202610191200.1@smtp-relay.mailin.fr>"}`)
		sender := brevo.New(brevo.Config{APIKey: "xkeysib-test", BaseURL: srv.URL + "/v3"},
			brevo.WithHTTPClient(srv.Client()))

		email := relayEmail()
		email.BCC = []string{"archief@huisverkoopklaar.nl"}
		email.Attachments = []mailer.Attachment{{Filename: "rapport.pdf", Encoded: "JVBERi0xLjM="}}

		receipt, err := sender.Send(t.Context(), email)
		require.NoError(t, err)
		assert.Equal(t, "<202610191200.1@smtp-relay.mailin.fr>", receipt.ID)
		assert.JSONEq(t, `{"messageId":"<202610191200.1@smtp-relay.mailin.fr>"}`, string(receipt.Raw))

		called, method, path, headers, body := c.snapshot()
		require.True(t, called)
		assert.Equal(t, http.MethodPost, method)
		assert.Equal(t, "/v3/smtp/email", path)
		assert.Equal(t, "xkeysib-test", headers.Get("api-key"))
		assert.Equal(t, "application/json", headers.Get("Accept"))
		assert.Equal(t, "application/json", headers.Get("Content-Type"))

		assert.Equal(t, map[string]any{"email": "j.dekker@huisverkoopklaar.nl", "name": "Huis Verkoop Klaar"}, body["sender"])
		assert.Equal(t, []any{map[string]any{"email": "jan@example.nl"}}, body["to"])
		assert.Equal(t, []any{map[string]any{"email": "archief@huisverkoopklaar.nl"}}, body["bcc"])
		assert.Equal(t, "Uw rapport", body["subject"])
		assert.Equal(t, "<p>Hallo</p>", body["htmlContent"])
		assert.Equal(t, "Hallo", body["textContent"])
		assert.Equal(t, []any{map[string]any{"name": "rapport.pdf", "content": "JVBERi0xLjM="}}, body["attachment"])
	})

	t.Run("empty bcc and attachments are omitted", func(t *testing.T) {
		t.Parallel()

		srv, c := newBrevoServer(t, http.StatusCreated, `{"messageId":"m1"}`)
		sender := brevo.New(brevo.Config{APIKey: "xkeysib-test", BaseURL: srv.URL})

		_, err := sender.Send(t.Context(), relayEmail())
		require.NoError(t, err)

		_, _, path, _, body := c.snapshot()
		assert.Equal(t, "/smtp/email", path)
		assert.NotContains(t, body, "bcc")
		assert.NotContains(t, body, "attachment")
	})

	t.Run("provider rejection carries status and body", func(t *testing.T) {
		t.Parallel()

		srv, _ := newBrevoServer(t, http.StatusBadRequest, `{"code":"invalid_parameter","message":"sender is invalid"}`)
		sender := brevo.New(brevo.Config{APIKey: "xkeysib-test", BaseURL: srv.URL})

		_, err := sender.Send(t.Context(), relayEmail())
		require.ErrorIs(t, err, mailer.ErrSendFailed)

		pe, ok := mailer.AsProviderError(err)
		require.True(t, ok)
		assert.Equal(t, "brevo", pe.Provider)
		assert.Equal(t, http.StatusBadRequest, pe.StatusCode)
		assert.JSONEq(t, `{"code":"invalid_parameter","message":"sender is invalid"}`, string(pe.Body))
	})

	t.Run("non-JSON error body becomes empty object", func(t *testing.T) {
		t.Parallel()

		srv, _ := newBrevoServer(t, http.StatusBadGateway, `<html>bad gateway</html>`)
		sender := brevo.New(brevo.Config{APIKey: "xkeysib-test", BaseURL: srv.URL})

		_, err := sender.Send(t.Context(), relayEmail())
		pe, ok := mailer.AsProviderError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, pe.StatusCode)
		assert.JSONEq(t, `{}`, string(pe.Body))
	})

	t.Run("missing api key never calls provider", func(t *testing.T) {
		t.Parallel()

		srv, c := newBrevoServer(t, http.StatusCreated, `{}`)
		sender := brevo.New(brevo.Config{BaseURL: srv.URL})

		_, err := sender.Send(t.Context(), relayEmail())
		require.ErrorIs(t, err, mailer.ErrNotConfigured)

		called, _, _, _, _ := c.snapshot()
		assert.False(t, called)
	})

	t.Run("missing recipient is rejected", func(t *testing.T) {
		t.Parallel()

		sender := brevo.New(brevo.Config{APIKey: "xkeysib-test"})
		email := relayEmail()
		email.To = []string{""}

		_, err := sender.Send(t.Context(), email)
		require.ErrorIs(t, err, mailer.ErrNoRecipient)
	})
}

func TestConfig_Configured(t *testing.T) {
	t.Parallel()

	assert.False(t, brevo.Config{}.Configured())
	assert.True(t, brevo.Config{APIKey: "k"}.Configured())
}
