// Package dispatcher ties route resolution, lifecycle events, middleware
// execution and the fallback handler together.
//
// A Dispatcher is itself a handler.Handler:
//
//	d := dispatcher.New(table, res, chain.NewFactory(c), nil, bus,
//		dispatcher.WithLogger(logger),
//	)
//	srv := server.New(":8080", server.WithHandler(dispatcher.HTTPHandler(d)))
//
// For a matched route the request is enriched with one attribute per
// route parameter, a RouteResolved event is emitted, and the route's
// middleware run in declaration order around the action resolved by the
// resolver. For an unmatched request a RouteNotFound event is emitted and
// the fallback handles it. Event delivery errors are logged and otherwise
// ignored.
package dispatcher
