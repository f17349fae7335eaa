package dispatcher

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

// HTTPOption configures the adapter returned by HTTPHandler.
type HTTPOption func(*httpHandler)

// WithRequestFactory replaces the factory building requests from
// *http.Request values.
func WithRequestFactory(factory request.Factory) HTTPOption {
	return func(h *httpHandler) {
		if factory != nil {
			h.requests = factory
		}
	}
}

// WithEmitter replaces the emitter that writes responses.
func WithEmitter(emitter response.Emitter) HTTPOption {
	return func(h *httpHandler) {
		if emitter != nil {
			h.emitter = emitter
		}
	}
}

// WithHTTPLogger sets the logger used for dispatch failures.
func WithHTTPLogger(logger *slog.Logger) HTTPOption {
	return func(h *httpHandler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

type httpHandler struct {
	next     handler.Handler
	requests request.Factory
	emitter  response.Emitter
	logger   *slog.Logger
}

// HTTPHandler adapts next to net/http. Errors returned by next are
// logged and emitted as error responses.
func HTTPHandler(next handler.Handler, opts ...HTTPOption) http.Handler {
	h := &httpHandler{
		next:     next,
		requests: request.NewFactory(),
		emitter:  response.NewEmitter(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := h.requests.Create(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.next.Handle(req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	_ = h.emitter.Emit(w, req.HTTP(), resp)
}

func (h *httpHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "dispatch failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	_ = h.emitter.Emit(w, r, response.Error(err))
}
