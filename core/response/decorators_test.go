package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/response"
)

func TestWithHeaders(t *testing.T) {
	t.Parallel()

	resp := response.WithHeaders(response.String("ok"), map[string]string{"X-A": "1", "X-B": "2"})

	w := httptest.NewRecorder()
	require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, "1", w.Header().Get("X-A"))
	assert.Equal(t, "2", w.Header().Get("X-B"))
	assert.Equal(t, "ok", w.Body.String())

	assert.Nil(t, response.WithHeaders(nil, map[string]string{"X-A": "1"}))
}

func TestWithCookie(t *testing.T) {
	t.Parallel()

	resp := response.WithCookie(response.NoContent(), &http.Cookie{Name: "session", Value: "abc"})

	w := httptest.NewRecorder()
	require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "session=abc")
}

func TestWithCache(t *testing.T) {
	t.Parallel()

	t.Run("cacheable", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, response.WithCache(response.NoContent(), time.Minute)(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))
		assert.NotEmpty(t, w.Header().Get("Expires"))
	})

	t.Run("no cache", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, response.WithCache(response.NoContent(), 0)(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
		assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
	})
}

func TestRedirects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		resp   response.Response
		status int
	}{
		{"found", response.Redirect("/next"), http.StatusFound},
		{"permanent", response.RedirectPermanent("/next"), http.StatusMovedPermanently},
		{"see other", response.RedirectSeeOther("/next"), http.StatusSeeOther},
		{"temporary", response.RedirectTemporary("/next"), http.StatusTemporaryRedirect},
		{"custom", response.RedirectWithStatus("/next", http.StatusPermanentRedirect), http.StatusPermanentRedirect},
		{"invalid status", response.RedirectWithStatus("/next", http.StatusOK), http.StatusFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			require.NoError(t, tt.resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "/next", w.Header().Get("Location"))
		})
	}
}
