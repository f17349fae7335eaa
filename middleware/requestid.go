package middleware

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

// RequestIDAttribute is the request attribute holding the request ID.
const RequestIDAttribute = "request_id"

type requestIDContextKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(req *request.Request) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting reuses the ID sent by the client in HeaderName
	UseExisting bool
}

// RequestID assigns a UUID to every request with the default configuration.
func RequestID() handler.Middleware {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig assigns an identifier to each request. The ID is
// stored as the request_id attribute and in the request context, and is
// echoed in the response header.
func RequestIDWithConfig(cfg RequestIDConfig) handler.Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return handler.MiddlewareFunc(func(req *request.Request, next handler.Handler) (response.Response, error) {
		if cfg.Skip != nil && cfg.Skip(req) {
			return next.Handle(req)
		}

		var id string
		if cfg.UseExisting && req.HTTP() != nil {
			id = req.HTTP().Header.Get(cfg.HeaderName)
		}
		if id == "" {
			id = cfg.Generator()
		}

		req = req.
			WithContext(context.WithValue(req.Context(), requestIDContextKey{}, id)).
			WithAttribute(RequestIDAttribute, id)

		resp, err := next.Handle(req)
		if err != nil {
			return nil, err
		}
		return response.WithHeader(resp, cfg.HeaderName, id), nil
	})
}

// GetRequestID returns the request ID attached to req.
func GetRequestID(req *request.Request) (string, bool) {
	v, ok := req.Attribute(RequestIDAttribute)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// RequestIDFromContext returns the request ID stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

// RequestIDExtractor adds the request ID to records logged with a
// request context. Use it with logger.WithContextExtractors.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id := RequestIDFromContext(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.RequestID(id), true
}
