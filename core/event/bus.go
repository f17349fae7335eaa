package event

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Bus is a synchronous in-process Dispatcher. Every handler registered for
// an event's name runs in the caller's goroutine, in registration order.
// All handlers run even when some fail; their errors are joined.
type Bus struct {
	mu         sync.RWMutex
	handlers   map[string][]Handler
	middleware []Middleware
	strict     bool
	logger     *slog.Logger
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithHandler registers handlers at construction time.
func WithHandler(handlers ...Handler) BusOption {
	return func(b *Bus) {
		for _, h := range handlers {
			b.add(h)
		}
	}
}

// WithMiddleware sets middleware applied to handlers as they are registered.
// It must precede WithHandler to affect those handlers.
func WithMiddleware(middleware ...Middleware) BusOption {
	return func(b *Bus) {
		b.middleware = append(b.middleware, middleware...)
	}
}

// WithStrict makes Dispatch fail with ErrNoHandlers for events nobody
// listens to.
func WithStrict() BusOption {
	return func(b *Bus) {
		b.strict = true
	}
}

// WithLogger sets the bus logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) BusOption {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBus creates a bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		handlers: make(map[string][]Handler),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers handlers. Safe for concurrent use with Dispatch.
func (b *Bus) Subscribe(handlers ...Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, h := range handlers {
		b.add(h)
	}
}

func (b *Bus) add(h Handler) {
	if h == nil {
		return
	}
	name := h.EventName()
	b.handlers[name] = append(b.handlers[name], chainMiddleware(h, b.middleware))
}

// HasHandlers reports whether any handler listens to the named event.
func (b *Bus) HasHandlers(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name]) > 0
}

// Dispatch wraps event in an Event envelope and runs every handler
// registered for its name. Handler panics are returned as errors.
func (b *Bus) Dispatch(ctx context.Context, event any) error {
	if event == nil {
		return ErrNilEvent
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	evt := NewEvent(event)

	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[evt.Name]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		if b.strict {
			return fmt.Errorf("%w: %s", ErrNoHandlers, evt.Name)
		}
		b.logger.DebugContext(ctx, "no handlers for event", slog.String("event", evt.Name))
		return nil
	}

	ctx = WithEventMeta(ctx, evt)

	var errs []error
	for _, h := range handlers {
		if err := safeHandle(ctx, h, event); err != nil {
			errs = append(errs, fmt.Errorf("handler for %s failed: %w", evt.Name, err))
		}
	}
	return errors.Join(errs...)
}

func safeHandle(ctx context.Context, h Handler, payload any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\nstack trace:\n%s", ErrHandlerPanic, r, debug.Stack())
		}
	}()
	return h.Handle(ctx, payload)
}
