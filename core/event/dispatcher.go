package event

import "context"

// Dispatcher delivers notifications. Callers in the request path treat
// delivery as fire-and-forget and only log the returned error.
type Dispatcher interface {
	Dispatch(ctx context.Context, event any) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, event any) error

// Dispatch calls f(ctx, event).
func (f DispatcherFunc) Dispatch(ctx context.Context, event any) error {
	return f(ctx, event)
}

// Discard drops every event.
var Discard Dispatcher = DispatcherFunc(func(context.Context, any) error { return nil })
