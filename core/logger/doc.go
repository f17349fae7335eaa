// Package logger builds slog loggers and provides attribute helpers with
// consistent key names.
//
// Loggers are created from options:
//
//	log := logger.New(
//		logger.WithProduction("dispatchd"),
//		logger.WithContextExtractors(requestIDFromContext),
//	)
//
//	log.Info("route resolved",
//		logger.Method(req.Method()),
//		logger.Path(req.Path()),
//		logger.Route("/users/{id}"),
//	)
//
// WithDevelopment selects text output at debug level; WithStaging and
// WithProduction select JSON at info level. Context extractors add
// attributes taken from the context passed to the *Context logging
// methods.
//
// Attribute helpers return an empty slog.Attr for missing values, which
// slog drops, so they can be used without nil checks.
package logger
