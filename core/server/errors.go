package server

import "errors"

var (
	// ErrMissingAddress is returned when server address is not provided.
	ErrMissingAddress = errors.New("server address is required")

	// ErrNoHandler is returned by Start when no handler was configured.
	ErrNoHandler = errors.New("server handler is required")

	// ErrServerAlreadyRunning is returned when Start is called twice.
	ErrServerAlreadyRunning = errors.New("server is already running")

	ErrHTTPServer   = errors.New("HTTP server error")
	ErrHTTPShutdown = errors.New("HTTP shutdown error")
	ErrTLSConfig    = errors.New("failed to load TLS configuration")
)
