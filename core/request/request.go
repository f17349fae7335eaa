package request

import (
	"context"
	"maps"
	"net/http"
)

// TypeName is the declared type identifier of the live request object.
// Handler parameters declared with this type are populated at invocation
// time with the request instance that reaches the handler.
const TypeName = "*request.Request"

// Request is an immutable view over an incoming HTTP request enriched with
// named attributes. Every With* method returns a modified copy and leaves
// the receiver untouched, so a Request may be shared freely between the
// middleware of a chain.
type Request struct {
	r     *http.Request
	attrs map[string]any
}

// New wraps an HTTP request. The request is not copied; callers must not
// mutate it after wrapping.
func New(r *http.Request) *Request {
	return &Request{r: r}
}

// HTTP returns the underlying HTTP request.
func (r *Request) HTTP() *http.Request {
	return r.r
}

// Context returns the request context.
func (r *Request) Context() context.Context {
	if r.r == nil {
		return context.Background()
	}
	return r.r.Context()
}

// Method returns the HTTP method of the request.
func (r *Request) Method() string {
	if r.r == nil {
		return ""
	}
	return r.r.Method
}

// Path returns the URL path of the request, preferring the raw path when
// the URL carries an encoded form.
func (r *Request) Path() string {
	if r.r == nil || r.r.URL == nil {
		return "/"
	}
	path := r.r.URL.Path
	if r.r.URL.RawPath != "" {
		path = r.r.URL.RawPath
	}
	if path == "" {
		path = "/"
	}
	return path
}

// Attribute returns the attribute stored under key.
func (r *Request) Attribute(key string) (any, bool) {
	v, ok := r.attrs[key]
	return v, ok
}

// Attributes returns a copy of all attributes attached to the request.
func (r *Request) Attributes() map[string]any {
	return maps.Clone(r.attrs)
}

// WithAttribute returns a copy of the request with key set to value.
func (r *Request) WithAttribute(key string, value any) *Request {
	attrs := make(map[string]any, len(r.attrs)+1)
	maps.Copy(attrs, r.attrs)
	attrs[key] = value
	return &Request{r: r.r, attrs: attrs}
}

// WithoutAttribute returns a copy of the request without key.
func (r *Request) WithoutAttribute(key string) *Request {
	if _, ok := r.attrs[key]; !ok {
		return r
	}
	attrs := maps.Clone(r.attrs)
	delete(attrs, key)
	return &Request{r: r.r, attrs: attrs}
}

// WithContext returns a copy of the request carrying ctx.
func (r *Request) WithContext(ctx context.Context) *Request {
	var hr *http.Request
	if r.r != nil {
		hr = r.r.WithContext(ctx)
	}
	return &Request{r: hr, attrs: r.attrs}
}
