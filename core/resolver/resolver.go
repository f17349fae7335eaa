package resolver

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
	"github.com/dmitrymomot/dispatch/core/routing"
)

// HandlerResolver assembles the terminal handler for a matched route.
type HandlerResolver interface {
	Resolve(matched routing.MatchedRoute) (handler.Handler, error)
}

// Resolver turns a route action into an invoker, binding the action's
// declared parameters from the route, the service locator and the live
// request.
type Resolver struct {
	locator container.Locator
	factory InvokerFactory
	logger  *slog.Logger
	lenient bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithInvokerFactory replaces the factory used to build invokers.
func WithInvokerFactory(f InvokerFactory) Option {
	return func(r *Resolver) {
		if f != nil {
			r.factory = f
		}
	}
}

// WithLenientBinding disables the resolution-time check for required
// parameters. A missing argument then surfaces as ErrArgumentMismatch when
// the handler is invoked.
func WithLenientBinding() Option {
	return func(r *Resolver) {
		r.lenient = true
	}
}

// WithLogger sets the logger used for binding diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a resolver over the given service locator.
func New(locator container.Locator, opts ...Option) *Resolver {
	r := &Resolver{
		locator: locator,
		factory: NewInvokerFactory(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve builds the handler for matched. Locator failures are returned
// unchanged apart from wrapping.
func (r *Resolver) Resolve(matched routing.MatchedRoute) (handler.Handler, error) {
	if matched.Route == nil {
		return nil, ErrNilRoute
	}

	action, err := r.action(matched.Route.Action)
	if err != nil {
		return nil, err
	}

	params, requestParameters, err := r.Parameters(action, matched)
	if err != nil {
		return nil, err
	}

	return r.factory.Create(action, requestParameters, params), nil
}

// action normalises the supported action shapes into an Invokable.
func (r *Resolver) action(raw any) (handler.Invokable, error) {
	switch a := raw.(type) {
	case handler.Invokable:
		return a, nil
	case func(handler.Args) (response.Response, error):
		return handler.NewFunc(a), nil
	case handler.HandlerFunc:
		return requestFunc(a), nil
	case func(*request.Request) (response.Response, error):
		return requestFunc(a), nil
	case handler.Class:
		return r.class(string(a))
	case string:
		return r.class(a)
	case handler.MethodRef:
		return r.method(a)
	default:
		return nil, fmt.Errorf("%w: unsupported action type %T", ErrInvalidHandler, raw)
	}
}

func (r *Resolver) class(id string) (handler.Invokable, error) {
	if !r.locator.Has(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHandler, id)
	}
	instance, err := r.locator.Get(id)
	if err != nil {
		return nil, fmt.Errorf("resolve handler %q: %w", id, err)
	}
	inv, ok := instance.(handler.Invokable)
	if !ok {
		return nil, fmt.Errorf("%w: %q resolved to non-invokable %T", ErrInvalidHandler, id, instance)
	}
	return inv, nil
}

func (r *Resolver) method(ref handler.MethodRef) (handler.Invokable, error) {
	if !r.locator.Has(ref.Class) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandler, ref)
	}
	instance, err := r.locator.Get(ref.Class)
	if err != nil {
		return nil, fmt.Errorf("resolve controller %q: %w", ref.Class, err)
	}
	ctrl, ok := instance.(handler.Controller)
	if !ok {
		return nil, fmt.Errorf("%w: %q resolved to non-controller %T", ErrInvalidHandler, ref.Class, instance)
	}
	inv, ok := ctrl.Action(ref.Method)
	if !ok || inv == nil {
		return nil, fmt.Errorf("%w: %s is not defined", ErrInvalidHandler, ref)
	}
	return inv, nil
}

// Parameters computes the arguments of action for matched. It returns the
// bound values by name and, separately, the names of the parameters that
// must receive the live request when the handler runs.
//
// Each parameter is bound by the first rule that applies:
//
//  1. a route parameter with the same name;
//  2. nil, if the parameter has no type or is nullable;
//  3. for service types, the registered service; for the request type,
//     deferred substitution; otherwise nothing;
//  4. for builtin types, the declared default;
//  5. nothing.
func (r *Resolver) Parameters(action handler.Invokable, matched routing.MatchedRoute) (map[string]any, []string, error) {
	declared := action.Params()
	params := make(map[string]any, len(declared))
	var requestParameters []string

	for _, p := range declared {
		if v, ok := matched.Params[p.Name]; ok && v != nil {
			params[p.Name] = v
			continue
		}

		if p.Type == "" || p.Nullable {
			params[p.Name] = nil
			continue
		}

		if !p.Builtin {
			switch {
			case r.locator.Has(p.Type):
				service, err := r.locator.Get(p.Type)
				if err != nil {
					return nil, nil, fmt.Errorf("resolve parameter %q: %w", p.Name, err)
				}
				params[p.Name] = service
				continue
			case p.Type == request.TypeName:
				requestParameters = append(requestParameters, p.Name)
				continue
			}
		} else if p.HasDefault {
			params[p.Name] = p.Default
			continue
		}

		if p.HasDefault {
			// Service typed parameters with a default receive it at call time.
			continue
		}

		r.logger.Debug("handler parameter left unresolved",
			slog.String("param", p.Name),
			slog.String("type", p.Type),
		)
		if !r.lenient {
			return nil, nil, fmt.Errorf("%w: %q of type %s", ErrUnresolvedParameter, p.Name, p.Type)
		}
	}

	return params, requestParameters, nil
}

// requestFunc wraps a plain request handler as an action taking the live
// request as its only parameter.
func requestFunc(fn func(*request.Request) (response.Response, error)) handler.Invokable {
	return handler.NewFunc(func(args handler.Args) (response.Response, error) {
		return fn(handler.Arg[*request.Request](args, 0))
	}, handler.Request("request"))
}
