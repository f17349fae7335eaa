package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

func newRequest(method, path string) *request.Request {
	return request.New(httptest.NewRequest(method, path, nil))
}

func render(t *testing.T, resp response.Response) (*httptest.ResponseRecorder, error) {
	t.Helper()
	require.NotNil(t, resp)

	w := httptest.NewRecorder()
	err := resp(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w, err
}
