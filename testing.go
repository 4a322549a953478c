package weba

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

// TestResult holds the output of building a component or serving a
// request in a test.
//
// Provides convenience methods for asserting on HTML content, headers and
// status codes, and for querying the rendered tree.
type TestResult struct {
	HTML       string
	Node       *Node
	StatusCode int
	Headers    http.Header
}

// TestRender builds t with def and returns its rendered output.
//
// Asynchronous hooks are awaited, so the same helper works for every
// component:
//
//	result, err := weba.TestRender(cardDef, &Card{Title: "Hello"})
//	if !result.HTMLContains("<h2>Hello</h2>") {
//	    t.Fatal("missing title")
//	}
func TestRender[T any](def *Definition[T], t T) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), def, t)
}

// TestRenderWithContext is TestRender with a custom context, for
// components that read request-scoped values in their hooks.
func TestRenderWithContext[T any](ctx context.Context, def *Definition[T], t T) (*TestResult, error) {
	t, err := def.Await(Detach(ctx), t)
	if err != nil {
		return nil, err
	}
	n := componentOf(t).Node
	return &TestResult{
		HTML:       n.String(),
		Node:       n,
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestServe sends a request to h and returns the recorded response.
//
//	result, err := weba.TestServe(weba.Handler(buildPage, nil), http.MethodGet, "/", nil)
//	if !result.IsOK() {
//	    t.Fatal("expected success")
//	}
func TestServe(h http.Handler, method, target string, formData map[string]string) (*TestResult, error) {
	return NewTestRequest(method, target).WithFormValues(formData).Execute(h)
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// Select returns the nodes of the result matching css. Invalid selectors
// match nothing.
func (r *TestResult) Select(css string) []*Node {
	if r.Node == nil {
		return nil
	}
	nodes, _ := r.Node.Select(css)
	return nodes
}

// Text returns the text of the first node matching css, or "".
func (r *TestResult) Text(css string) string {
	if nodes := r.Select(css); len(nodes) > 0 {
		return nodes[0].Text()
	}
	return ""
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// TestRequestBuilder provides a fluent interface for building test requests.
//
//	result, err := weba.NewTestRequest("POST", "/search").
//	    WithFormData("q", "weba").
//	    WithHeader("X-Custom", "header").
//	    WithContext(ctx).
//	    Execute(handler)
type TestRequestBuilder struct {
	method   string
	url      string
	formData map[string]string
	headers  map[string]string
	ctx      context.Context
}

// NewTestRequest creates a new test request builder.
func NewTestRequest(method, url string) *TestRequestBuilder {
	return &TestRequestBuilder{
		method:   method,
		url:      url,
		formData: make(map[string]string),
		headers:  make(map[string]string),
		ctx:      context.Background(),
	}
}

// WithFormData adds form data to the request.
func (b *TestRequestBuilder) WithFormData(key, value string) *TestRequestBuilder {
	b.formData[key] = value
	return b
}

// WithFormValues adds multiple form values to the request.
func (b *TestRequestBuilder) WithFormValues(data map[string]string) *TestRequestBuilder {
	for k, v := range data {
		b.formData[k] = v
	}
	return b
}

// WithHeader adds a header to the request.
func (b *TestRequestBuilder) WithHeader(key, value string) *TestRequestBuilder {
	b.headers[key] = value
	return b
}

// WithContext sets the context for the request.
func (b *TestRequestBuilder) WithContext(ctx context.Context) *TestRequestBuilder {
	b.ctx = ctx
	return b
}

// Execute sends the request to h. HTML responses are parsed into
// TestResult.Node.
func (b *TestRequestBuilder) Execute(h http.Handler) (*TestResult, error) {
	form := url.Values{}
	for k, v := range b.formData {
		form.Set(k, v)
	}

	var body *strings.Reader
	if len(b.formData) > 0 {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(b.method, b.url, body)
	req = req.WithContext(b.ctx)
	if len(b.formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	result := &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") && strings.TrimSpace(result.HTML) != "" {
		n, err := Parse(result.HTML)
		if err != nil {
			return nil, err
		}
		result.Node = n
	}
	return result, nil
}
