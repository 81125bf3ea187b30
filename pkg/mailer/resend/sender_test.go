package resend_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huisverkoopklaar/leadmail/pkg/mailer"
	"github.com/huisverkoopklaar/leadmail/pkg/mailer/resend"
)

type capturedRequest struct {
	Path   string
	Auth   string
	Body   map[string]any
	Called bool
}

func newResendServer(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest, *sync.Mutex) {
	t.Helper()

	var mu sync.Mutex
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		mu.Lock()
		captured.Called = true
		captured.Path = r.URL.Path
		captured.Auth = r.Header.Get("Authorization")
		_ = json.Unmarshal(data, &captured.Body)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, captured, &mu
}

func reportEmail() *mailer.Email {
	return &mailer.Email{
		From:    "onboarding@resend.dev",
		To:      []string{"jan@example.nl"},
		BCC:     []string{"j.dekker@huisverkoopklaar.nl"},
		ReplyTo: "jan@example.nl",
		Subject: "Waarderapport",
		Text:    "In de bijlage vind je het PDF-waarderapport.",
		Attachments: []mailer.Attachment{{
			Filename:    "waarderapport.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.3"),
		}},
	}
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("sends request and returns provider id", func(t *testing.T) {
		t.Parallel()

		srv, captured, mu := newResendServer(t, http.StatusOK, `{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`)

		sender, err := resend.New(resend.Config{APIKey: "re_test", BaseURL: srv.URL})
		require.NoError(t, err)

		receipt, err := sender.Send(t.Context(), reportEmail())
		require.NoError(t, err)
		assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", receipt.ID)
		assert.JSONEq(t, `{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`, string(receipt.Raw))

		mu.Lock()
		defer mu.Unlock()
		assert.True(t, strings.HasSuffix(captured.Path, "/emails"))
		assert.Equal(t, "Bearer re_test", captured.Auth)
		assert.Equal(t, "onboarding@resend.dev", captured.Body["from"])
		assert.Equal(t, []any{"jan@example.nl"}, captured.Body["to"])
		assert.Equal(t, []any{"j.dekker@huisverkoopklaar.nl"}, captured.Body["bcc"])
		assert.Equal(t, "Waarderapport", captured.Body["subject"])
		assert.Equal(t, "In de bijlage vind je het PDF-waarderapport.", captured.Body["text"])

		attachments, ok := captured.Body["attachments"].([]any)
		require.True(t, ok)
		require.Len(t, attachments, 1)
		first, ok := attachments[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "waarderapport.pdf", first["filename"])
	})

	t.Run("falls back to configured sender", func(t *testing.T) {
		t.Parallel()

		srv, captured, mu := newResendServer(t, http.StatusOK, `{"id":"x"}`)

		sender, err := resend.New(resend.Config{APIKey: "re_test", From: "rapport@huisverkoopklaar.nl", BaseURL: srv.URL})
		require.NoError(t, err)

		email := reportEmail()
		email.From = ""
		_, err = sender.Send(t.Context(), email)
		require.NoError(t, err)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "rapport@huisverkoopklaar.nl", captured.Body["from"])
	})

	t.Run("missing api key never calls provider", func(t *testing.T) {
		t.Parallel()

		srv, captured, mu := newResendServer(t, http.StatusOK, `{"id":"x"}`)

		sender, err := resend.New(resend.Config{BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = sender.Send(t.Context(), reportEmail())
		require.ErrorIs(t, err, mailer.ErrNotConfigured)

		mu.Lock()
		defer mu.Unlock()
		assert.False(t, captured.Called)
	})

	t.Run("missing recipient is rejected", func(t *testing.T) {
		t.Parallel()

		sender, err := resend.New(resend.Config{APIKey: "re_test"})
		require.NoError(t, err)

		email := reportEmail()
		email.To = nil
		_, err = sender.Send(t.Context(), email)
		require.ErrorIs(t, err, mailer.ErrNoRecipient)
	})

	t.Run("provider error is returned", func(t *testing.T) {
		t.Parallel()

		srv, _, _ := newResendServer(t, http.StatusUnprocessableEntity,
			`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`)

		sender, err := resend.New(resend.Config{APIKey: "re_test", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = sender.Send(t.Context(), reportEmail())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resend")
	})

	t.Run("undecodable encoded attachment fails before sending", func(t *testing.T) {
		t.Parallel()

		srv, captured, mu := newResendServer(t, http.StatusOK, `{"id":"x"}`)

		sender, err := resend.New(resend.Config{APIKey: "re_test", BaseURL: srv.URL})
		require.NoError(t, err)

		email := reportEmail()
		email.Attachments = []mailer.Attachment{{Filename: "bad.pdf", Encoded: "%%%"}}
		_, err = sender.Send(t.Context(), email)
		require.Error(t, err)

		mu.Lock()
		defer mu.Unlock()
		assert.False(t, captured.Called)
	})
}

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := resend.New(resend.Config{APIKey: "re_test", BaseURL: "://bad"})
	require.Error(t, err)
}

func TestConfig_Configured(t *testing.T) {
	t.Parallel()

	assert.False(t, resend.Config{}.Configured())
	assert.True(t, resend.Config{APIKey: "re_test"}.Configured())
}
