// Package event carries the lifecycle notifications emitted while
// dispatching a request.
//
// The dispatcher reports two moments: RouteResolved after a route matched
// and its parameters were attached to the request, and RouteNotFound
// before the fallback handler runs. Both are delivered through the
// Dispatcher interface. Delivery is fire-and-forget from the dispatcher's
// point of view; a failing listener never changes the response.
//
// Bus is the in-process Dispatcher. Handlers are registered per event
// name, usually through NewHandlerFunc which derives the name from the
// payload type:
//
//	bus := event.NewBus(
//		event.WithMiddleware(event.LoggingMiddleware(logger)),
//		event.WithHandler(event.NewHandlerFunc(func(ctx context.Context, evt event.RouteNotFound) error {
//			logger.WarnContext(ctx, "no route", slog.String("path", evt.Request.Path()))
//			return nil
//		})),
//	)
//
// Dispatch runs every matching handler synchronously, recovers panics into
// ErrHandlerPanic and joins all handler errors. The envelope metadata is
// available to handlers through EventID, EventName and EventTime.
//
// Discard is a Dispatcher that drops everything.
package event
