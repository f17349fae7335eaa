package routing

import (
	"errors"
	"slices"

	"github.com/dmitrymomot/dispatch/core/request"
)

var (
	// ErrRouteNotFound is returned by a Router when no route matches.
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidPattern is returned when a route pattern is rejected.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrInvalidMethod is returned for an unsupported HTTP method.
	ErrInvalidMethod = errors.New("invalid http method")

	// ErrDuplicateRoute is returned when a method and pattern pair is registered twice.
	ErrDuplicateRoute = errors.New("duplicate route")

	// ErrNilAction is returned when a route is registered without an action.
	ErrNilAction = errors.New("nil route action")
)

// Router resolves a request into a matched route.
// Implementations must be safe for concurrent use.
type Router interface {
	// Resolve fails with ErrRouteNotFound when nothing matches.
	Resolve(req *request.Request) (MatchedRoute, error)
}

// Route describes a registered route. It is read-only once registered.
type Route struct {
	Method  string
	Pattern string
	Name    string
	// Action is a handler.Invokable, handler.Class or handler.MethodRef.
	Action any
	// Middlewares are service identifiers resolved through the locator,
	// executed in order.
	Middlewares []string
}

// MatchedRoute pairs a route with the parameters extracted from the path.
type MatchedRoute struct {
	Route  *Route
	Params map[string]any
}

// Param returns the value of the named route parameter.
func (m MatchedRoute) Param(name string) (any, bool) {
	v, ok := m.Params[name]
	return v, ok
}

// ParamNames returns the parameter names in sorted order.
func (m MatchedRoute) ParamNames() []string {
	names := make([]string, 0, len(m.Params))
	for k := range m.Params {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// RouterFunc adapts a function to the Router interface.
type RouterFunc func(req *request.Request) (MatchedRoute, error)

// Resolve calls f(req).
func (f RouterFunc) Resolve(req *request.Request) (MatchedRoute, error) {
	return f(req)
}
