// Package lambdahttp serves an http.Handler from AWS Lambda behind an
// API Gateway HTTP API (payload format 2.0).
package lambdahttp

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// Adapter converts API Gateway events into HTTP requests.
type Adapter struct {
	handler http.Handler
}

// New wraps h for use with lambda.Start(a.Handle).
func New(h http.Handler) *Adapter {
	return &Adapter{handler: h}
}

// Handle serves one API Gateway event.
func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	req, err := Request(ctx, event)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	w := newResponseWriter()
	a.handler.ServeHTTP(w, req)
	return w.event(), nil
}

// Request builds the *http.Request described by event.
// API Gateway sends the upstream request id in the event context; it is
// exposed as X-Request-ID unless the client supplied one.
func Request(ctx context.Context, event events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("lambdahttp: decode body: %w", err)
		}
		body = decoded
	}

	path := event.RawPath
	if path == "" {
		path = event.RequestContext.HTTP.Path
	}
	if path == "" {
		path = "/"
	}

	u, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("lambdahttp: parse path: %w", err)
	}
	u.RawQuery = event.RawQueryString
	if event.RequestContext.DomainName != "" {
		u.Scheme = "https"
		u.Host = event.RequestContext.DomainName
	}

	method := event.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("lambdahttp: build request: %w", err)
	}

	for name, value := range event.Headers {
		req.Header.Set(name, value)
	}
	if len(event.Cookies) > 0 {
		req.Header.Set("Cookie", strings.Join(event.Cookies, "; "))
	}
	if req.Header.Get("X-Request-ID") == "" && event.RequestContext.RequestID != "" {
		req.Header.Set("X-Request-ID", event.RequestContext.RequestID)
	}

	req.RequestURI = u.RequestURI()
	req.RemoteAddr = event.RequestContext.HTTP.SourceIP
	if u.Host != "" {
		req.Host = u.Host
	}
	return req, nil
}

type responseWriter struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func newResponseWriter() *responseWriter {
	return &responseWriter{header: make(http.Header)}
}

func (w *responseWriter) Header() http.Header {
	return w.header
}

func (w *responseWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

func (w *responseWriter) event() events.APIGatewayV2HTTPResponse {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	resp := events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    make(map[string]string, len(w.header)),
		Cookies:    w.header.Values("Set-Cookie"),
	}
	for name, values := range w.header {
		if name == "Set-Cookie" {
			continue
		}
		resp.Headers[name] = strings.Join(values, ", ")
	}

	data := w.body.Bytes()
	if isText(w.header.Get("Content-Type"), data) {
		resp.Body = string(data)
	} else {
		resp.Body = base64.StdEncoding.EncodeToString(data)
		resp.IsBase64Encoded = true
	}
	return resp
}

// isText reports whether a body can travel as a plain string.
func isText(contentType string, data []byte) bool {
	if len(data) == 0 {
		return true
	}
	if !utf8.Valid(data) {
		return false
	}
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "text/") ||
		mediaType == "application/json" ||
		strings.HasSuffix(mediaType, "+json") ||
		mediaType == "application/xml" ||
		mediaType == "application/javascript"
}
