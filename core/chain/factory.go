package chain

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/handler"
)

// RunnerFactory builds runners from middleware identifiers.
type RunnerFactory interface {
	Create(middlewares []string, final handler.Handler) (handler.Handler, error)
}

// Factory resolves middleware through a service locator.
type Factory struct {
	locator container.Locator
	logger  *slog.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithLogger sets the logger used to report skipped middleware.
func WithLogger(logger *slog.Logger) FactoryOption {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFactory creates a factory over locator.
func NewFactory(locator container.Locator, opts ...FactoryOption) *Factory {
	f := &Factory{
		locator: locator,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Build resolves each identifier. Values that are not middleware are
// skipped; locator failures abort the build.
func (f *Factory) Build(ids []string) ([]handler.Middleware, error) {
	result := make([]handler.Middleware, 0, len(ids))
	for _, id := range ids {
		v, err := f.locator.Get(id)
		if err != nil {
			return nil, fmt.Errorf("resolve middleware %q: %w", id, err)
		}

		mw, ok := v.(handler.Middleware)
		if !ok {
			f.logger.Debug("skipping value that is not a middleware",
				slog.String("middleware", id),
				slog.String("type", fmt.Sprintf("%T", v)),
			)
			continue
		}
		result = append(result, mw)
	}
	return result, nil
}

// Create builds a runner over the resolved middleware and final.
func (f *Factory) Create(middlewares []string, final handler.Handler) (handler.Handler, error) {
	mws, err := f.Build(middlewares)
	if err != nil {
		return nil, err
	}
	return New(mws, final), nil
}
