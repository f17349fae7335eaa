package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(req *request.Request) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for completed requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slower requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging logs every request with the default configuration.
func Logging() handler.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger logs every request to log.
func LoggingWithLogger(log *slog.Logger) handler.Middleware {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig logs one record per request once its response has been
// rendered, with method, path, status, size and duration. Handler errors
// are logged at error level when they are returned.
func LoggingWithConfig(cfg LoggingConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return handler.MiddlewareFunc(func(req *request.Request, next handler.Handler) (response.Response, error) {
		if cfg.Skip != nil && cfg.Skip(req) {
			return next.Handle(req)
		}

		start := time.Now()
		ctx := req.Context()
		id, _ := GetRequestID(req)

		resp, err := next.Handle(req)
		if err != nil {
			cfg.Logger.ErrorContext(ctx, "request failed",
				logger.Component(cfg.Component),
				logger.Method(req.Method()),
				logger.Path(req.Path()),
				logger.RequestID(id),
				logger.Duration(time.Since(start)),
				logger.Error(err),
			)
			return nil, err
		}
		if resp == nil {
			return nil, nil
		}

		return func(w http.ResponseWriter, r *http.Request) error {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			renderErr := resp(rec, r)
			duration := time.Since(start)

			level := cfg.LogLevel
			switch {
			case renderErr != nil:
				level = slog.LevelError
			case duration >= cfg.SlowRequestThreshold:
				level = slog.LevelWarn
			}

			cfg.Logger.LogAttrs(ctx, level, "request completed",
				logger.Component(cfg.Component),
				logger.Method(req.Method()),
				logger.Path(req.Path()),
				logger.RequestID(id),
				logger.StatusCode(rec.status),
				logger.BytesOut(rec.bytes),
				logger.Duration(duration),
				logger.UserAgent(userAgent(req)),
				logger.Error(renderErr),
			)
			return renderErr
		}, nil
	})
}

func userAgent(req *request.Request) string {
	if req.HTTP() == nil {
		return ""
	}
	return req.HTTP().UserAgent()
}

// statusRecorder captures the status and size of a rendered response.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	n, err := r.ResponseWriter.Write(b)
	r.bytes += int64(n)
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
