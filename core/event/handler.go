package event

import (
	"context"
	"fmt"
)

// HandlerFunc is a type-safe function signature for processing events of type T.
type HandlerFunc[T any] func(context.Context, T) error

// Handler processes events of a single name.
type Handler interface {
	// EventName returns the event name this handler processes.
	EventName() string

	// Handle executes the handler with the given event payload.
	Handle(ctx context.Context, payload any) error
}

// NewHandler creates a handler with an explicit event name.
func NewHandler[T any](eventName string, fn HandlerFunc[T]) Handler {
	return &handlerFuncWrapper[T]{
		name: eventName,
		fn:   fn,
	}
}

// NewHandlerFunc creates a type-safe handler whose event name is derived
// from T.
//
// Example:
//
//	h := event.NewHandlerFunc(func(ctx context.Context, evt event.RouteNotFound) error {
//	    logger.WarnContext(ctx, "no route", slog.String("path", evt.Request.Path()))
//	    return nil
//	})
func NewHandlerFunc[T any](fn HandlerFunc[T]) Handler {
	var zero T
	return &handlerFuncWrapper[T]{
		name: NameOf(zero),
		fn:   fn,
	}
}

type handlerFuncWrapper[T any] struct {
	name string
	fn   HandlerFunc[T]
}

func (h *handlerFuncWrapper[T]) EventName() string {
	return h.name
}

func (h *handlerFuncWrapper[T]) Handle(ctx context.Context, payload any) error {
	typed, ok := payload.(T)
	if !ok {
		return fmt.Errorf("unexpected payload type %T for event %s", payload, h.name)
	}
	return h.fn(ctx, typed)
}
