package event

import (
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/routing"
)

// RouteResolved is emitted once per request after a route matched. Request
// already carries the route parameters as attributes.
type RouteResolved struct {
	Route   routing.MatchedRoute
	Request *request.Request
}

// RouteNotFound is emitted once per request when no route matched, before
// the fallback handler runs. Request is the original request.
type RouteNotFound struct {
	Request *request.Request
}

// EventFactory builds the notifications produced while dispatching.
type EventFactory interface {
	RouteResolved(route routing.MatchedRoute, req *request.Request) any
	RouteNotFound(req *request.Request) any
}

type defaultFactory struct{}

// NewEventFactory returns the factory producing RouteResolved and
// RouteNotFound values.
func NewEventFactory() EventFactory {
	return defaultFactory{}
}

func (defaultFactory) RouteResolved(route routing.MatchedRoute, req *request.Request) any {
	return RouteResolved{Route: route, Request: req}
}

func (defaultFactory) RouteNotFound(req *request.Request) any {
	return RouteNotFound{Request: req}
}
