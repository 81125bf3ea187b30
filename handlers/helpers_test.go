package handlers_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/huisverkoopklaar/leadmail"
	"github.com/huisverkoopklaar/leadmail/handlers"
	"github.com/huisverkoopklaar/leadmail/pkg/mailer"
)

type senderMock struct {
	mock.Mock
}

func (m *senderMock) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
	args := m.Called(ctx, email)
	receipt, _ := args.Get(0).(*mailer.Receipt)
	return receipt, args.Error(1)
}

// sentEmail returns the message passed to the first Send call.
func (m *senderMock) sentEmail() *mailer.Email {
	for _, call := range m.Calls {
		if call.Method == "Send" {
			email, _ := call.Arguments.Get(1).(*mailer.Email)
			return email
		}
	}
	return nil
}

type rendererStub struct {
	mu    sync.Mutex
	lines []string
	err   error
}

func (r *rendererStub) Render(lines []string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = lines
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.3 stub"), nil
}

func (r *rendererStub) rendered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lines
}

func newTestApp(hs ...leadmail.Handler) *leadmail.App {
	return leadmail.New(
		leadmail.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		leadmail.WithNotFoundHandler(handlers.NotFound),
		leadmail.WithHandlers(hs...),
	)
}

func serve(t *testing.T, app *leadmail.App, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}
