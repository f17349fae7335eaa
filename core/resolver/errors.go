package resolver

import "errors"

var (
	// ErrInvalidHandler is returned when a route action has none of the
	// supported shapes.
	ErrInvalidHandler = errors.New("invalid handler provided")

	// ErrUnresolvedParameter is returned at resolution time for a required
	// parameter that nothing could be bound to.
	ErrUnresolvedParameter = errors.New("unresolved handler parameter")

	// ErrArgumentMismatch is returned at invocation time when an argument
	// is missing. Only reachable with lenient binding.
	ErrArgumentMismatch = errors.New("handler argument mismatch")

	// ErrNilRoute is returned when a matched route carries no route.
	ErrNilRoute = errors.New("matched route has no route")
)
