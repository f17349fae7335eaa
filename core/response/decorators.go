package response

import (
	"fmt"
	"net/http"
	"time"
)

// WithHeader decorates resp so that the header is set before it renders.
func WithHeader(resp Response, key, value string) Response {
	if resp == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set(key, value)
		return resp(w, r)
	}
}

// WithHeaders decorates resp with several headers.
func WithHeaders(resp Response, headers map[string]string) Response {
	if resp == nil || len(headers) == 0 {
		return resp
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		return resp(w, r)
	}
}

// WithCookie decorates resp with a Set-Cookie header.
func WithCookie(resp Response, cookie *http.Cookie) Response {
	if resp == nil || cookie == nil {
		return resp
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		http.SetCookie(w, cookie)
		return resp(w, r)
	}
}

// WithCache sets caching headers for maxAge, or disables caching when
// maxAge is not positive.
func WithCache(resp Response, maxAge time.Duration) Response {
	if resp == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		if maxAge > 0 {
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
			w.Header().Set("Expires", time.Now().Add(maxAge).UTC().Format(http.TimeFormat))
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		return resp(w, r)
	}
}
