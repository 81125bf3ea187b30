package middlewares_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/huisverkoopklaar/leadmail/internal"
)

// testContext is a minimal internal.Context for exercising middleware
// without building an App. Log calls are recorded per level.
type testContext struct {
	response *internal.ResponseWriter
	request  *http.Request
	values   map[any]any

	mu   sync.Mutex
	logs map[string][]string
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		response: internal.NewResponseWriter(w),
		request:  r,
		values:   make(map[any]any),
		logs:     make(map[string][]string),
	}
}

func (c *testContext) logged(level string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logs[level]
}

func (c *testContext) record(level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs[level] = append(c.logs[level], msg)
}

func (c *testContext) Request() *http.Request        { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.response }
func (c *testContext) Context() context.Context      { return c.request.Context() }
func (c *testContext) Param(name string) string      { return "" }

func (c *testContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *testContext) QueryDefault(name, defaultValue string) string {
	v := c.request.URL.Query().Get(name)
	if v == "" {
		return defaultValue
	}
	return v
}

func (c *testContext) Header(name string) string { return c.request.Header.Get(name) }
func (c *testContext) HasHeader(name string) bool {
	_, ok := c.request.Header[http.CanonicalHeaderKey(name)]
	return ok
}
func (c *testContext) SetHeader(name, value string) { c.response.Header().Set(name, value) }

func (c *testContext) Body() ([]byte, error) {
	if c.request.Body == nil {
		return nil, nil
	}
	return io.ReadAll(c.request.Body)
}

func (c *testContext) BindJSON(v any) error {
	data, err := c.Body()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (c *testContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *testContext) NoContent(code int) error { c.response.WriteHeader(code); return nil }

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	err := internal.NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *testContext) Written() bool                     { return c.response.Written() }
func (c *testContext) Logger() *slog.Logger              { return slog.New(slog.NewTextHandler(io.Discard, nil)) }
func (c *testContext) LogDebug(msg string, attrs ...any) { c.record("debug", msg) }
func (c *testContext) LogInfo(msg string, attrs ...any)  { c.record("info", msg) }
func (c *testContext) LogWarn(msg string, attrs ...any)  { c.record("warn", msg) }
func (c *testContext) LogError(msg string, attrs ...any) { c.record("error", msg) }

func (c *testContext) Set(key, value any) {
	c.values[key] = value
	// Also store in request context for context extractors
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *testContext) Get(key any) any {
	return c.values[key]
}

func (c *testContext) ResponseWriter() *internal.ResponseWriter { return c.response }
func (c *testContext) Deadline() (time.Time, bool)              { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}                    { return c.request.Context().Done() }
func (c *testContext) Err() error                               { return c.request.Context().Err() }
func (c *testContext) Value(key any) any                        { return c.request.Context().Value(key) }
