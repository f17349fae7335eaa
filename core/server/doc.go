// Package server runs an http.Handler with graceful shutdown.
//
//	srv := server.New(":8080",
//		server.WithHandler(h),
//		server.WithLogger(logger),
//		server.WithShutdownTimeout(10*time.Second),
//	)
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx))
//	return g.Wait()
//
// Run starts the server and, once ctx is canceled, drains in-flight
// requests for at most the shutdown timeout. Config carries the same
// settings loaded from SERVER_* environment variables; NewFromConfig turns
// it into a server.
package server
