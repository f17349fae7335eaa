package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

// Check verifies one dependency.
type Check func(ctx context.Context) error

// Readiness runs every check with the request context. It answers "READY"
// when all pass and fails with response.ErrServiceUnavailable on the first
// failing check.
//
// Example:
//
//	table.Get("/health/ready", health.Readiness(log, db.Ping))
func Readiness(log *slog.Logger, checks ...Check) handler.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(req *request.Request) (response.Response, error) {
		ctx := req.Context()
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				return response.Error(response.ErrServiceUnavailable), nil
			}
		}
		return response.String("READY"), nil
	}
}
