package handler

import (
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

// Handler produces a response for a request.
type Handler interface {
	Handle(req *request.Request) (response.Response, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(req *request.Request) (response.Response, error)

// Handle calls f(req).
func (f HandlerFunc) Handle(req *request.Request) (response.Response, error) {
	return f(req)
}

// Middleware processes a request before and after the rest of the chain.
// It may delegate to next, transform the request or the response, or
// return without calling next at all.
type Middleware interface {
	Process(req *request.Request, next Handler) (response.Response, error)
}

// MiddlewareFunc adapts a function to the Middleware interface.
type MiddlewareFunc func(req *request.Request, next Handler) (response.Response, error)

// Process calls f(req, next).
func (f MiddlewareFunc) Process(req *request.Request, next Handler) (response.Response, error) {
	return f(req, next)
}
