package routing_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/routing"
)

func newRequest(method, target string) *request.Request {
	return request.New(httptest.NewRequest(method, target, nil))
}

func TestTableResolve(t *testing.T) {
	t.Parallel()

	table := routing.NewTable()
	users, err := table.Get("/users/{id}", "users.show", "auth")
	require.NoError(t, err)
	_, err = table.Post("/users", "users.create")
	require.NoError(t, err)
	files, err := table.Get("/files/*", "files.serve")
	require.NoError(t, err)

	t.Run("matches route and extracts params", func(t *testing.T) {
		t.Parallel()

		matched, err := table.Resolve(newRequest(http.MethodGet, "/users/42"))
		require.NoError(t, err)

		assert.Same(t, users, matched.Route)
		assert.Equal(t, map[string]any{"id": "42"}, matched.Params)
		assert.Equal(t, []string{"auth"}, matched.Route.Middlewares)

		v, ok := matched.Param("id")
		assert.True(t, ok)
		assert.Equal(t, "42", v)
	})

	t.Run("matches wildcard", func(t *testing.T) {
		t.Parallel()

		matched, err := table.Resolve(newRequest(http.MethodGet, "/files/a/b.txt"))
		require.NoError(t, err)

		assert.Same(t, files, matched.Route)
		assert.Equal(t, "a/b.txt", matched.Params["*"])
	})

	t.Run("unknown path is not found", func(t *testing.T) {
		t.Parallel()

		_, err := table.Resolve(newRequest(http.MethodGet, "/missing"))
		assert.ErrorIs(t, err, routing.ErrRouteNotFound)
	})

	t.Run("wrong method is not found", func(t *testing.T) {
		t.Parallel()

		_, err := table.Resolve(newRequest(http.MethodDelete, "/users/42"))
		assert.ErrorIs(t, err, routing.ErrRouteNotFound)
	})

	t.Run("concurrent resolve", func(t *testing.T) {
		t.Parallel()

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				matched, err := table.Resolve(newRequest(http.MethodPost, "/users"))
				assert.NoError(t, err)
				assert.Empty(t, matched.Params)
			}()
		}
		wg.Wait()
	})
}

func TestTableRegistrationErrors(t *testing.T) {
	t.Parallel()

	table := routing.NewTable()

	_, err := table.Add(routing.Route{Method: "BREW", Pattern: "/coffee", Action: "x"})
	assert.ErrorIs(t, err, routing.ErrInvalidMethod)

	_, err = table.Get("users", "x")
	assert.ErrorIs(t, err, routing.ErrInvalidPattern)

	_, err = table.Get("/users", nil)
	assert.ErrorIs(t, err, routing.ErrNilAction)

	_, err = table.Get("/users", "x")
	require.NoError(t, err)
	_, err = table.Get("/users", "y")
	assert.ErrorIs(t, err, routing.ErrDuplicateRoute)

	_, err = table.Get("/posts/{id}/{id}", "x")
	assert.ErrorIs(t, err, routing.ErrInvalidPattern)
}

func TestTableGroup(t *testing.T) {
	t.Parallel()

	table := routing.NewTable()
	err := table.Group("/admin", func(g *routing.Group) error {
		if _, err := g.Get("/stats", "stats", "audit"); err != nil {
			return err
		}
		return g.Group("/users", func(g *routing.Group) error {
			_, err := g.Post("/{id}/ban", "ban")
			return err
		}, "strict")
	}, "auth")
	require.NoError(t, err)

	routes := table.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/admin/stats", routes[0].Pattern)
	assert.Equal(t, []string{"auth", "audit"}, routes[0].Middlewares)
	assert.Equal(t, "/admin/users/{id}/ban", routes[1].Pattern)
	assert.Equal(t, []string{"auth", "strict"}, routes[1].Middlewares)

	matched, err := table.Resolve(newRequest(http.MethodPost, "/admin/users/7/ban"))
	require.NoError(t, err)
	assert.Equal(t, "7", matched.Params["id"])
}

func TestMatchedRouteParamNames(t *testing.T) {
	t.Parallel()

	m := routing.MatchedRoute{Params: map[string]any{"b": 1, "a": 2}}
	assert.Equal(t, []string{"a", "b"}, m.ParamNames())
}
