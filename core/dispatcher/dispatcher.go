package dispatcher

import (
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/dispatch/core/chain"
	"github.com/dmitrymomot/dispatch/core/event"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/resolver"
	"github.com/dmitrymomot/dispatch/core/response"
	"github.com/dmitrymomot/dispatch/core/routing"
)

// Dispatcher is the top-level request handler. It resolves the route,
// attaches route parameters to the request, emits lifecycle events and
// runs the route's middleware chain around the resolved action. Requests
// that match no route go to the fallback handler.
type Dispatcher struct {
	router   routing.Router
	resolver resolver.HandlerResolver
	chains   chain.RunnerFactory
	fallback handler.Handler
	events   event.Dispatcher
	factory  event.EventFactory
	logger   *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used to report failed event delivery.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithEventFactory replaces the factory building lifecycle events.
func WithEventFactory(factory event.EventFactory) Option {
	return func(d *Dispatcher) {
		if factory != nil {
			d.factory = factory
		}
	}
}

// New creates a dispatcher. A nil fallback defaults to NotFoundHandler and
// nil events to event.Discard.
func New(
	router routing.Router,
	res resolver.HandlerResolver,
	chains chain.RunnerFactory,
	fallback handler.Handler,
	events event.Dispatcher,
	opts ...Option,
) *Dispatcher {
	if fallback == nil {
		fallback = NotFoundHandler()
	}
	if events == nil {
		events = event.Discard
	}

	d := &Dispatcher{
		router:   router,
		resolver: res,
		chains:   chains,
		fallback: fallback,
		events:   events,
		factory:  event.NewEventFactory(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle dispatches req. Only routing.ErrRouteNotFound is handled here;
// every other error is returned to the caller unchanged.
func (d *Dispatcher) Handle(req *request.Request) (response.Response, error) {
	matched, err := d.router.Resolve(req)
	if errors.Is(err, routing.ErrRouteNotFound) {
		d.notify(req, d.factory.RouteNotFound(req))
		return d.fallback.Handle(req)
	}
	if err != nil {
		return nil, err
	}

	for _, name := range matched.ParamNames() {
		req = req.WithAttribute(name, matched.Params[name])
	}
	d.notify(req, d.factory.RouteResolved(matched, req))

	final, err := d.resolver.Resolve(matched)
	if err != nil {
		return nil, err
	}

	var middlewares []string
	if matched.Route != nil {
		middlewares = matched.Route.Middlewares
	}

	runner, err := d.chains.Create(middlewares, final)
	if err != nil {
		return nil, err
	}
	return runner.Handle(req)
}

func (d *Dispatcher) notify(req *request.Request, evt any) {
	if err := d.events.Dispatch(req.Context(), evt); err != nil {
		d.logger.WarnContext(req.Context(), "event delivery failed",
			slog.String("event", event.NameOf(evt)),
			slog.String("method", req.Method()),
			slog.String("path", req.Path()),
			slog.String("error", err.Error()),
		)
	}
}

// NotFoundHandler returns the default fallback. Its response fails with
// response.ErrNotFound so the emitter writes a 404.
func NotFoundHandler() handler.Handler {
	return handler.HandlerFunc(func(*request.Request) (response.Response, error) {
		return response.Error(response.ErrNotFound), nil
	})
}
