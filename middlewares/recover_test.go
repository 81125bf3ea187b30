package middlewares_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huisverkoopklaar/leadmail/internal"
	"github.com/huisverkoopklaar/leadmail/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers from panic and returns PanicError", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/send-pdf", nil)
		ctx := newTestContext(httptest.NewRecorder(), req)

		handler := middlewares.Recover()(func(c internal.Context) error {
			panic("renderer exploded")
		})

		err := handler(ctx)
		require.Error(t, err)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "renderer exploded", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Equal(t, []string{"panic recovered"}, ctx.logged("error"))
	})

	t.Run("passes through handler errors untouched", func(t *testing.T) {
		t.Parallel()

		want := errors.New("provider down")
		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover()(func(c internal.Context) error {
			return want
		})(ctx)

		require.Same(t, want, err)
		require.Empty(t, ctx.logged("error"))
	})

	t.Run("DisablePrintStack leaves stack empty", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(c internal.Context) error {
			panic("no stack")
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Nil(t, pe.Stack)
	})

	t.Run("non-positive stack size falls back to default", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover(middlewares.WithRecoverStackSize(0))(func(c internal.Context) error {
			panic("zero")
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.NotEmpty(t, pe.Stack)
		require.LessOrEqual(t, len(pe.Stack), middlewares.DefaultStackSize)
	})

	t.Run("error panic stays matchable", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover()(func(c internal.Context) error {
			panic(io.ErrUnexpectedEOF)
		})(ctx)

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestRecover_WithApp(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithMiddleware(middlewares.Recover()),
		internal.WithHandlers(&panicHandler{}),
	)

	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

type panicHandler struct{}

func (panicHandler) Routes(r internal.Router) {
	r.GET("/panic", func(c internal.Context) error {
		panic("boom")
	})
}
