package request_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/request"
)

type ctxKey struct{}

func TestWithAttribute(t *testing.T) {
	t.Parallel()

	t.Run("returns copy and keeps original intact", func(t *testing.T) {
		t.Parallel()

		orig := request.New(httptest.NewRequest(http.MethodGet, "/users/42", nil))
		enriched := orig.WithAttribute("id", 42)

		assert.NotSame(t, orig, enriched)
		_, ok := orig.Attribute("id")
		assert.False(t, ok)

		v, ok := enriched.Attribute("id")
		require.True(t, ok)
		assert.Equal(t, 42, v)
		assert.Same(t, orig.HTTP(), enriched.HTTP())
	})

	t.Run("chained copies do not share attribute maps", func(t *testing.T) {
		t.Parallel()

		base := request.New(httptest.NewRequest(http.MethodGet, "/", nil)).WithAttribute("a", 1)
		left := base.WithAttribute("b", 2)
		right := base.WithAttribute("b", 3)

		lv, _ := left.Attribute("b")
		rv, _ := right.Attribute("b")
		assert.Equal(t, 2, lv)
		assert.Equal(t, 3, rv)
		assert.Len(t, base.Attributes(), 1)
	})

	t.Run("attributes returns a copy", func(t *testing.T) {
		t.Parallel()

		req := request.New(httptest.NewRequest(http.MethodGet, "/", nil)).WithAttribute("a", 1)
		attrs := req.Attributes()
		attrs["a"] = 2

		v, _ := req.Attribute("a")
		assert.Equal(t, 1, v)
	})
}

func TestWithoutAttribute(t *testing.T) {
	t.Parallel()

	req := request.New(httptest.NewRequest(http.MethodGet, "/", nil)).WithAttribute("a", 1)
	stripped := req.WithoutAttribute("a")

	_, ok := stripped.Attribute("a")
	assert.False(t, ok)
	_, ok = req.Attribute("a")
	assert.True(t, ok)
	assert.Same(t, stripped, stripped.WithoutAttribute("missing"))
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	req := request.New(httptest.NewRequest(http.MethodGet, "/", nil)).WithAttribute("a", 1)
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	withCtx := req.WithContext(ctx)

	assert.Equal(t, "v", withCtx.Context().Value(ctxKey{}))
	assert.Nil(t, req.Context().Value(ctxKey{}))
	v, _ := withCtx.Attribute("a")
	assert.Equal(t, 1, v)
}

func TestPath(t *testing.T) {
	t.Parallel()

	req := request.New(httptest.NewRequest(http.MethodGet, "/files/a%2Fb", nil))
	assert.Equal(t, "/files/a%2Fb", req.Path())
	assert.Equal(t, http.MethodGet, req.Method())
}

func TestFactory(t *testing.T) {
	t.Parallel()

	f := request.NewFactory()

	hr := httptest.NewRequest(http.MethodPost, "/", nil)
	req, err := f.Create(hr)
	require.NoError(t, err)
	assert.Same(t, hr, req.HTTP())

	_, err = f.Create(nil)
	assert.ErrorIs(t, err, request.ErrNilHTTPRequest)
}
