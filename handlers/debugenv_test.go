package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huisverkoopklaar/leadmail/config"
	"github.com/huisverkoopklaar/leadmail/handlers"
	"github.com/huisverkoopklaar/leadmail/pkg/mailer/brevo"
	"github.com/huisverkoopklaar/leadmail/pkg/mailer/resend"
)

func TestDebugEnvHandler(t *testing.T) {
	t.Parallel()

	t.Run("nothing configured", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(handlers.NewDebugEnvHandler(&config.Config{}))
		rec := serve(t, app, http.MethodGet, "/api/debug-env", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"hasResend":false,"hasBrevo":false,"nodeEnv":null}`, rec.Body.String())
	})

	t.Run("configured providers never leak secrets", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Env:    "production",
			Resend: resend.Config{APIKey: "re_secret"},
			Brevo:  brevo.Config{APIKey: "xkeysib-secret"},
		}
		app := newTestApp(handlers.NewDebugEnvHandler(cfg))
		rec := serve(t, app, http.MethodGet, "/api/debug-env", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"hasResend":true,"hasBrevo":true,"nodeEnv":"production"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("POST is rejected", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(handlers.NewDebugEnvHandler(&config.Config{}))
		rec := serve(t, app, http.MethodPost, "/api/debug-env", "{}", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestApp(), http.MethodGet, "/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}
