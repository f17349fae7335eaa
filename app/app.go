package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/dispatch/core/chain"
	"github.com/dmitrymomot/dispatch/core/config"
	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/dispatcher"
	"github.com/dmitrymomot/dispatch/core/event"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/resolver"
	"github.com/dmitrymomot/dispatch/core/routing"
	"github.com/dmitrymomot/dispatch/core/server"
	"github.com/dmitrymomot/dispatch/middleware"
)

// Identifiers of the middleware registered by New.
const (
	MiddlewareRecover   = "recover"
	MiddlewareRequestID = "request_id"
	MiddlewareLogging   = "logging"
)

// App wires the dispatch pipeline: container, routing table, resolver,
// middleware chains, event bus, dispatcher and HTTP server.
type App struct {
	config    Config
	hasConfig bool
	logger    *slog.Logger

	container  *container.Container
	routes     *routing.Table
	bus        *event.Bus
	fallback   handler.Handler
	dispatcher *dispatcher.Dispatcher
	server     *server.Server
	serverOpts []server.Option
}

// AppOption configures an App.
type AppOption func(*App) error

// New builds an application. Without WithConfig the configuration is
// loaded from the environment.
func New(opts ...AppOption) (*App, error) {
	app := &App{}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if !app.hasConfig {
		if err := config.Load(&app.config); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = newLogger(app.config)
	}

	if app.container == nil {
		app.container = container.New()
	}
	if err := app.registerDefaults(); err != nil {
		return nil, err
	}

	if app.routes == nil {
		app.routes = routing.NewTable()
	}

	if app.bus == nil {
		app.bus = event.NewBus(
			event.WithLogger(app.logger),
			event.WithMiddleware(event.LoggingMiddleware(app.logger)),
		)
	}
	app.bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, evt event.RouteNotFound) error {
		app.logger.DebugContext(ctx, "route not found",
			logger.Method(evt.Request.Method()),
			logger.Path(evt.Request.Path()),
		)
		return nil
	}))

	resolverOpts := []resolver.Option{resolver.WithLogger(app.logger)}
	if app.config.LenientBinding {
		resolverOpts = append(resolverOpts, resolver.WithLenientBinding())
	}

	app.dispatcher = dispatcher.New(
		app.routes,
		resolver.New(app.container, resolverOpts...),
		chain.NewFactory(app.container, chain.WithLogger(app.logger)),
		app.fallback,
		app.bus,
		dispatcher.WithLogger(app.logger),
	)

	serverOpts := append([]server.Option{
		server.WithHandler(app.Handler()),
		server.WithLogger(app.logger),
	}, app.serverOpts...)
	srv, err := server.NewFromConfig(app.config.Server, serverOpts...)
	if err != nil {
		return nil, err
	}
	app.server = srv

	return app, nil
}

func newLogger(cfg Config) *slog.Logger {
	env := logger.WithProduction(cfg.AppName)
	switch cfg.Env {
	case "development", "":
		env = logger.WithDevelopment(cfg.AppName)
	case "staging":
		env = logger.WithStaging(cfg.AppName)
	}

	return logger.New(
		env,
		logger.WithLevel(cfg.Level()),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	)
}

// registerDefaults makes the logger and the stock middleware available to
// handlers and routes unless the container already provides them.
func (a *App) registerDefaults() error {
	defaults := map[string]any{
		MiddlewareRecover:   middleware.RecoverWithConfig(middleware.RecoverConfig{Logger: a.logger}),
		MiddlewareRequestID: middleware.RequestID(),
		MiddlewareLogging:   middleware.LoggingWithLogger(a.logger),
	}
	for id, mw := range defaults {
		if a.container.Has(id) {
			continue
		}
		if err := a.container.ProvideValue(id, mw); err != nil {
			return err
		}
	}

	if !a.container.Has(container.KeyOf[*slog.Logger]()) {
		return container.RegisterValue(a.container, a.logger)
	}
	return nil
}

// Config returns the effective configuration.
func (a *App) Config() Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Container returns the service container used to resolve handler
// dependencies and middleware.
func (a *App) Container() *container.Container { return a.container }

// Routes returns the routing table.
func (a *App) Routes() *routing.Table { return a.routes }

// Events returns the event bus.
func (a *App) Events() *event.Bus { return a.bus }

// Dispatcher returns the dispatcher.
func (a *App) Dispatcher() *dispatcher.Dispatcher { return a.dispatcher }

// Handler returns the dispatcher as an http.Handler.
func (a *App) Handler() http.Handler {
	return dispatcher.HTTPHandler(a.dispatcher, dispatcher.WithHTTPLogger(a.logger))
}

// Server returns the HTTP server.
func (a *App) Server() *server.Server { return a.server }

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "application starting",
		logger.Component("app"),
		slog.String("addr", a.config.Server.Addr),
		slog.Int("routes", len(a.routes.Routes())),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx))

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// WithConfig uses cfg instead of loading the configuration.
func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		app.hasConfig = true
		return nil
	}
}

// WithLogger sets the application logger.
func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

// WithContainer sets the service container.
func WithContainer(c *container.Container) AppOption {
	return func(app *App) error {
		if c == nil {
			return errors.New("container cannot be nil")
		}
		app.container = c
		return nil
	}
}

// WithRoutes sets the routing table.
func WithRoutes(routes *routing.Table) AppOption {
	return func(app *App) error {
		if routes == nil {
			return errors.New("routing table cannot be nil")
		}
		app.routes = routes
		return nil
	}
}

// WithEventBus sets the event bus.
func WithEventBus(bus *event.Bus) AppOption {
	return func(app *App) error {
		if bus == nil {
			return errors.New("event bus cannot be nil")
		}
		app.bus = bus
		return nil
	}
}

// WithFallback sets the handler for requests that match no route.
func WithFallback(h handler.Handler) AppOption {
	return func(app *App) error {
		if h == nil {
			return errors.New("fallback handler cannot be nil")
		}
		app.fallback = h
		return nil
	}
}

// WithServerOptions adds options applied to the HTTP server after the
// configuration.
func WithServerOptions(opts ...server.Option) AppOption {
	return func(app *App) error {
		app.serverOpts = append(app.serverOpts, opts...)
		return nil
	}
}
