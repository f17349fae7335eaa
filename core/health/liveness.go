package health

import (
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

// Liveness reports that the process is running. It always answers
// "ALIVE" with 200 OK and checks nothing.
//
// Example:
//
//	table.Get("/health/live", health.Liveness())
func Liveness() handler.HandlerFunc {
	return func(*request.Request) (response.Response, error) {
		return response.String("ALIVE"), nil
	}
}

// NoContent answers 204 without a body. Suited to high-frequency pings.
func NoContent() handler.HandlerFunc {
	return func(*request.Request) (response.Response, error) {
		return response.NoContent(), nil
	}
}
