package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
	"github.com/dmitrymomot/dispatch/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen *request.Request
	next := handler.HandlerFunc(func(req *request.Request) (response.Response, error) {
		seen = req
		return response.String("ok"), nil
	})

	resp, err := middleware.RequestID().Process(newRequest(http.MethodGet, "/"), next)
	require.NoError(t, err)

	id, ok := middleware.GetRequestID(seen)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, middleware.RequestIDFromContext(seen.Context()))

	w, err := render(t, resp)
	require.NoError(t, err)
	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "ok", w.Body.String())
}

func TestRequestIDWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("uses existing header", func(t *testing.T) {
		t.Parallel()

		req := newRequest(http.MethodGet, "/")
		req.HTTP().Header.Set("X-Trace", "incoming")

		var got string
		mw := middleware.RequestIDWithConfig(middleware.RequestIDConfig{HeaderName: "X-Trace", UseExisting: true})
		resp, err := mw.Process(req, handler.HandlerFunc(func(r *request.Request) (response.Response, error) {
			got, _ = middleware.GetRequestID(r)
			return response.NoContent(), nil
		}))
		require.NoError(t, err)
		assert.Equal(t, "incoming", got)

		w, err := render(t, resp)
		require.NoError(t, err)
		assert.Equal(t, "incoming", w.Header().Get("X-Trace"))
	})

	t.Run("custom generator ignores incoming header by default", func(t *testing.T) {
		t.Parallel()

		req := newRequest(http.MethodGet, "/")
		req.HTTP().Header.Set("X-Request-ID", "incoming")

		var got string
		mw := middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: func() string { return "fixed" }})
		_, err := mw.Process(req, handler.HandlerFunc(func(r *request.Request) (response.Response, error) {
			got, _ = middleware.GetRequestID(r)
			return response.NoContent(), nil
		}))
		require.NoError(t, err)
		assert.Equal(t, "fixed", got)
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		mw := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Skip: func(r *request.Request) bool { return r.Path() == "/health" },
		})
		_, err := mw.Process(newRequest(http.MethodGet, "/health"), handler.HandlerFunc(func(r *request.Request) (response.Response, error) {
			_, ok := middleware.GetRequestID(r)
			assert.False(t, ok)
			return response.NoContent(), nil
		}))
		require.NoError(t, err)
	})

	t.Run("propagates errors", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		resp, err := middleware.RequestID().Process(newRequest(http.MethodGet, "/"), handler.HandlerFunc(func(*request.Request) (response.Response, error) {
			return nil, boom
		}))
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, resp)
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	_, ok := middleware.RequestIDExtractor(context.Background())
	assert.False(t, ok)

	var ctx context.Context
	_, err := middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: func() string { return "abc" }}).
		Process(newRequest(http.MethodGet, "/"), handler.HandlerFunc(func(r *request.Request) (response.Response, error) {
			ctx = r.Context()
			return response.NoContent(), nil
		}))
	require.NoError(t, err)

	attr, ok := middleware.RequestIDExtractor(ctx)
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
