// Package dispatch is the request-dispatch core of an HTTP framework:
// given an incoming request it resolves the route, runs the route's
// middleware chain and invokes the action with automatically bound
// parameters.
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/dispatch/core/dispatcher
//	go doc -all github.com/dmitrymomot/dispatch/core/resolver
//
// # Dispatch Pipeline
//
//	github.com/dmitrymomot/dispatch/core/request    - Immutable request with named attributes
//	github.com/dmitrymomot/dispatch/core/response   - Render-function responses, HTTP errors and the emitter
//	github.com/dmitrymomot/dispatch/core/handler    - Handler and middleware contracts, parameter descriptors, actions
//	github.com/dmitrymomot/dispatch/core/routing    - Route table on chi, matched routes, group registration
//	github.com/dmitrymomot/dispatch/core/container  - Service locator with lazy singletons and typed helpers
//	github.com/dmitrymomot/dispatch/core/resolver   - Parameter binding and invoker construction
//	github.com/dmitrymomot/dispatch/core/chain      - Middleware chain runner and factory
//	github.com/dmitrymomot/dispatch/core/event      - Route lifecycle events and the in-process bus
//	github.com/dmitrymomot/dispatch/core/dispatcher - Orchestrator and net/http adapter
//
// # Supporting Packages
//
//	github.com/dmitrymomot/dispatch/core/config     - Cached environment configuration with .env support
//	github.com/dmitrymomot/dispatch/core/logger     - slog construction and attribute helpers
//	github.com/dmitrymomot/dispatch/core/server     - HTTP server with graceful shutdown
//	github.com/dmitrymomot/dispatch/core/health     - Liveness and readiness actions
//	github.com/dmitrymomot/dispatch/middleware      - Request ID, request logging and panic recovery
//	github.com/dmitrymomot/dispatch/app             - Composition root
//
// # Quick Start
//
//	a, err := app.New()
//	if err != nil {
//		return err
//	}
//
//	_, err = a.Routes().Get("/hello/{name}", handler.NewFunc(
//		func(args handler.Args) (response.Response, error) {
//			return response.String("Hello, " + handler.Arg[string](args, 0)), nil
//		},
//		handler.String("name"),
//	), app.MiddlewareRequestID, app.MiddlewareLogging)
//	if err != nil {
//		return err
//	}
//
//	return a.Run(ctx)
package dispatch
