package event

import "errors"

var (
	// ErrNilEvent is returned when a nil event is dispatched.
	ErrNilEvent = errors.New("event is nil")

	// ErrNoHandlers is returned in strict mode when no handlers are registered for an event.
	ErrNoHandlers = errors.New("no handlers registered for event")

	// ErrHandlerPanic wraps a panic raised by an event handler.
	ErrHandlerPanic = errors.New("event handler panicked")
)
