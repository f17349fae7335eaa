// Package middleware provides reusable handler.Middleware implementations.
//
// Middleware are registered in the container under an identifier and
// referenced by routes through that identifier:
//
//	c.ProvideValue("request_id", middleware.RequestID())
//	c.ProvideValue("logging", middleware.LoggingWithLogger(log))
//	c.ProvideValue("recover", middleware.Recover())
//
//	table.Get("/users/{id}", showUser, "recover", "request_id", "logging")
//
// RequestID stores the ID as the request_id attribute and in the request
// context; RequestIDExtractor adds it to log records. Logging writes one
// record per request after the response rendered. Recover turns panics
// into errors wrapping ErrPanic.
package middleware
