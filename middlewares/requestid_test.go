package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/huisverkoopklaar/leadmail/internal"
	"github.com/huisverkoopklaar/leadmail/middlewares"
)

func runRequestID(t *testing.T, req *http.Request, opts ...middlewares.RequestIDOption) (*httptest.ResponseRecorder, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	ctx := newTestContext(rec, req)

	var captured string
	handler := middlewares.RequestID(opts...)(func(c internal.Context) error {
		captured = middlewares.GetRequestID(c)
		return nil
	})

	require.NoError(t, handler(ctx))
	return rec, captured
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates a UUID when not present", func(t *testing.T) {
		t.Parallel()

		rec, id := runRequestID(t, httptest.NewRequest(http.MethodPost, "/api/send", nil))

		_, err := uuid.Parse(id)
		require.NoError(t, err)
		require.Equal(t, id, rec.Header().Get("X-Request-ID"))
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "existing-123")

		rec, id := runRequestID(t, req)

		require.Equal(t, "existing-123", id)
		require.Equal(t, "existing-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("falls back to the Vercel edge ID", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Vercel-Id", "fra1::abc")

		_, id := runRequestID(t, req)
		require.Equal(t, "fra1::abc", id)
	})

	t.Run("headers are checked in priority order", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace-ID", "trace-456")
		req.Header.Set("X-Custom-ID", "custom-123")

		_, id := runRequestID(t, req, middlewares.WithRequestIDHeaders("X-Custom-ID", "X-Trace-ID"))
		require.Equal(t, "custom-123", id)
	})

	t.Run("custom generator and response header", func(t *testing.T) {
		t.Parallel()

		rec, id := runRequestID(t, httptest.NewRequest(http.MethodGet, "/", nil),
			middlewares.WithRequestIDGenerator(func() string { return "fixed" }),
			middlewares.WithRequestIDResponseHeader("X-Trace-ID"),
		)

		require.Equal(t, "fixed", id)
		require.Equal(t, "fixed", rec.Header().Get("X-Trace-ID"))
		require.Empty(t, rec.Header().Get("X-Request-ID"))
	})
}

func TestGetRequestID(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Empty(t, middlewares.GetRequestID(ctx))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	t.Run("returns attribute when request ID present", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := newTestContext(httptest.NewRecorder(), req)

		handler := middlewares.RequestID()(func(c internal.Context) error { return nil })
		require.NoError(t, handler(ctx))

		attr, ok := middlewares.RequestIDExtractor()(ctx.Context())
		require.True(t, ok)
		require.Equal(t, "request_id", attr.Key)
		require.NotEmpty(t, attr.Value.String())
	})

	t.Run("returns false without request ID", func(t *testing.T) {
		t.Parallel()

		_, ok := middlewares.RequestIDExtractor()(context.Background())
		require.False(t, ok)
	})
}
