package chain

import (
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

// Runner executes an ordered list of middleware in front of a final
// handler. Each middleware receives, as its next handler, a Runner over
// the middleware that follow it; once the list is exhausted the final
// handler is called.
//
// A Runner never changes after construction. The remaining chain is a
// cursor into the shared middleware slice, so stepping through the chain
// does not copy it.
type Runner struct {
	middlewares []handler.Middleware
	final       handler.Handler
	pos         int
}

// New creates a runner. The middleware slice is copied.
func New(middlewares []handler.Middleware, final handler.Handler) *Runner {
	return &Runner{
		middlewares: append([]handler.Middleware(nil), middlewares...),
		final:       final,
	}
}

// Len returns the number of middleware still to run.
func (r *Runner) Len() int {
	return len(r.middlewares) - r.pos
}

// Handle runs the next middleware, or the final handler when none remain.
func (r *Runner) Handle(req *request.Request) (response.Response, error) {
	if r.pos >= len(r.middlewares) {
		return r.final.Handle(req)
	}

	next := &Runner{
		middlewares: r.middlewares,
		final:       r.final,
		pos:         r.pos + 1,
	}
	return r.middlewares[r.pos].Process(req, next)
}
