package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/health"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

func emit(t *testing.T, h func(*request.Request) (response.Response, error)) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := h(request.New(r))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	_ = response.NewEmitter().Emit(w, r, resp)
	return w
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	w := emit(t, health.Liveness())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusNoContent, emit(t, health.NoContent()).Code)
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("db down") }

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		w := emit(t, health.Readiness(nil, ok, ok))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("failing check", func(t *testing.T) {
		t.Parallel()

		calls := 0
		after := func(context.Context) error {
			calls++
			return nil
		}

		w := emit(t, health.Readiness(nil, ok, failing, after))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Zero(t, calls)
	})
}
