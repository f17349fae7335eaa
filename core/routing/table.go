package routing

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/dispatch/core/request"
)

var methods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// Table is a Router backed by the chi routing tree. Patterns follow chi
// syntax: "/users/{id}", "/files/*", "/posts/{slug:[a-z-]+}".
//
// Routes must be registered before the table starts serving; Resolve is
// safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	mux    *chi.Mux
	routes map[string]*Route
	order  []*Route
}

// NewTable creates an empty routing table.
func NewTable() *Table {
	return &Table{
		mux:    chi.NewRouter(),
		routes: make(map[string]*Route),
	}
}

func routeKey(method, pattern string) string {
	return method + " " + pattern
}

// Add registers a route.
func (t *Table) Add(route Route) (*Route, error) {
	route.Method = strings.ToUpper(route.Method)
	if _, ok := methods[route.Method]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, route.Method)
	}
	if len(route.Pattern) == 0 || route.Pattern[0] != '/' {
		return nil, fmt.Errorf("%w: %q must begin with '/'", ErrInvalidPattern, route.Pattern)
	}
	if route.Action == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNilAction, route.Method, route.Pattern)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := routeKey(route.Method, route.Pattern)
	if _, exists := t.routes[key]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRoute, key)
	}

	if err := t.register(route.Method, route.Pattern); err != nil {
		return nil, err
	}

	r := &route
	r.Middlewares = append([]string(nil), route.Middlewares...)
	t.routes[key] = r
	t.order = append(t.order, r)
	return r, nil
}

// register adds the pattern to the chi tree, converting its panics on
// malformed patterns into errors.
func (t *Table) register(method, pattern string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, p)
		}
	}()
	t.mux.Method(method, pattern, http.NotFoundHandler())
	return nil
}

// Get registers a GET route.
func (t *Table) Get(pattern string, action any, middlewares ...string) (*Route, error) {
	return t.Add(Route{Method: http.MethodGet, Pattern: pattern, Action: action, Middlewares: middlewares})
}

// Post registers a POST route.
func (t *Table) Post(pattern string, action any, middlewares ...string) (*Route, error) {
	return t.Add(Route{Method: http.MethodPost, Pattern: pattern, Action: action, Middlewares: middlewares})
}

// Put registers a PUT route.
func (t *Table) Put(pattern string, action any, middlewares ...string) (*Route, error) {
	return t.Add(Route{Method: http.MethodPut, Pattern: pattern, Action: action, Middlewares: middlewares})
}

// Patch registers a PATCH route.
func (t *Table) Patch(pattern string, action any, middlewares ...string) (*Route, error) {
	return t.Add(Route{Method: http.MethodPatch, Pattern: pattern, Action: action, Middlewares: middlewares})
}

// Delete registers a DELETE route.
func (t *Table) Delete(pattern string, action any, middlewares ...string) (*Route, error) {
	return t.Add(Route{Method: http.MethodDelete, Pattern: pattern, Action: action, Middlewares: middlewares})
}

// Group registers routes sharing a path prefix and leading middleware.
func (t *Table) Group(prefix string, fn func(g *Group) error, middlewares ...string) error {
	return fn(&Group{table: t, prefix: prefix, middlewares: middlewares})
}

// Routes returns the registered routes in registration order.
func (t *Table) Routes() []Route {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Route, len(t.order))
	for i, r := range t.order {
		out[i] = *r
	}
	return out
}

// Resolve matches the request method and path against the table.
func (t *Table) Resolve(req *request.Request) (MatchedRoute, error) {
	method := req.Method()
	path := req.Path()

	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, ok := methods[method]; !ok {
		return MatchedRoute{}, fmt.Errorf("%w: %s %s", ErrRouteNotFound, method, path)
	}

	rctx := chi.NewRouteContext()
	pattern := t.mux.Find(rctx, method, path)
	if pattern == "" {
		return MatchedRoute{}, fmt.Errorf("%w: %s %s", ErrRouteNotFound, method, path)
	}

	route, ok := t.routes[routeKey(method, pattern)]
	if !ok {
		return MatchedRoute{}, fmt.Errorf("%w: %s %s", ErrRouteNotFound, method, path)
	}

	params := make(map[string]any, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if i < len(rctx.URLParams.Values) {
			params[key] = rctx.URLParams.Values[i]
		}
	}

	return MatchedRoute{Route: route, Params: params}, nil
}

// Group registers routes under a common prefix and middleware list.
type Group struct {
	table       *Table
	prefix      string
	middlewares []string
}

// Add registers a route relative to the group prefix.
func (g *Group) Add(route Route) (*Route, error) {
	route.Pattern = g.prefix + route.Pattern
	route.Middlewares = append(append([]string(nil), g.middlewares...), route.Middlewares...)
	return g.table.Add(route)
}

// Get registers a GET route relative to the group prefix.
func (g *Group) Get(pattern string, action any, middlewares ...string) (*Route, error) {
	return g.Add(Route{Method: http.MethodGet, Pattern: pattern, Action: action, Middlewares: middlewares})
}

// Post registers a POST route relative to the group prefix.
func (g *Group) Post(pattern string, action any, middlewares ...string) (*Route, error) {
	return g.Add(Route{Method: http.MethodPost, Pattern: pattern, Action: action, Middlewares: middlewares})
}

// Group nests a group under this one.
func (g *Group) Group(prefix string, fn func(g *Group) error, middlewares ...string) error {
	return fn(&Group{
		table:       g.table,
		prefix:      g.prefix + prefix,
		middlewares: append(append([]string(nil), g.middlewares...), middlewares...),
	})
}
