package event

import (
	"context"
	"log/slog"
	"time"
)

// Middleware wraps a Handler with cross-cutting behaviour.
type Middleware func(Handler) Handler

type middlewareHandler struct {
	name string
	fn   func(ctx context.Context, payload any) error
}

func (h *middlewareHandler) EventName() string {
	return h.name
}

func (h *middlewareHandler) Handle(ctx context.Context, payload any) error {
	return h.fn(ctx, payload)
}

// chainMiddleware applies middleware left to right; the first one wraps innermost.
func chainMiddleware(handler Handler, middleware []Middleware) Handler {
	for _, mw := range middleware {
		handler = mw(handler)
	}
	return handler
}

// LoggingMiddleware logs handler execution with timing.
//
// Example:
//
//	bus := event.NewBus(event.WithMiddleware(event.LoggingMiddleware(logger)))
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return &middlewareHandler{
			name: next.EventName(),
			fn: func(ctx context.Context, payload any) error {
				start := time.Now()
				err := next.Handle(ctx, payload)
				duration := time.Since(start)

				if err != nil {
					logger.ErrorContext(ctx, "event handler failed",
						slog.String("event", next.EventName()),
						slog.String("event_id", EventID(ctx)),
						slog.Duration("duration", duration),
						slog.Any("error", err))
				} else {
					logger.DebugContext(ctx, "event handled",
						slog.String("event", next.EventName()),
						slog.String("event_id", EventID(ctx)),
						slog.Duration("duration", duration))
				}

				return err
			},
		}
	}
}
