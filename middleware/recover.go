package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

// ErrPanic wraps panics recovered by Recover.
var ErrPanic = errors.New("panic recovered")

// RecoverConfig configures the recover middleware.
type RecoverConfig struct {
	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger
	// DisableStack omits the stack trace from the log record
	DisableStack bool
}

// Recover converts panics into errors with the default configuration.
func Recover() handler.Middleware {
	return RecoverWithConfig(RecoverConfig{})
}

// RecoverWithConfig converts panics raised by the rest of the chain, or by
// the response it returns, into errors wrapping ErrPanic. http.ErrAbortHandler
// is re-raised so net/http can abort the connection.
func RecoverWithConfig(cfg RecoverConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	recovered := func(req *request.Request, v any) error {
		if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
			panic(v)
		}

		stack := debug.Stack()
		attrs := []slog.Attr{
			logger.Method(req.Method()),
			logger.Path(req.Path()),
			slog.Any("panic", v),
		}
		if !cfg.DisableStack {
			attrs = append(attrs, slog.String("stack", string(stack)))
		}
		cfg.Logger.LogAttrs(req.Context(), slog.LevelError, "panic recovered", attrs...)

		return fmt.Errorf("%w: %v", ErrPanic, v)
	}

	return handler.MiddlewareFunc(func(req *request.Request, next handler.Handler) (resp response.Response, err error) {
		defer func() {
			if v := recover(); v != nil {
				resp, err = nil, recovered(req, v)
			}
		}()

		resp, err = next.Handle(req)
		if err != nil || resp == nil {
			return resp, err
		}

		inner := resp
		return func(w http.ResponseWriter, r *http.Request) (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = recovered(req, v)
				}
			}()
			return inner(w, r)
		}, nil
	})
}
