// Command dispatchd serves a few demonstration routes through the dispatch
// pipeline.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/dispatch/app"
	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/health"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
	"github.com/dmitrymomot/dispatch/core/routing"
)

// directory is a toy company registry injected into handlers.
type directory struct {
	companies map[string]string
}

func (d *directory) lookup(slug string) (string, bool) {
	name, ok := d.companies[slug]
	return name, ok
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New()
	if err != nil {
		slog.Error("failed to build application", logger.Error(err))
		os.Exit(1)
	}

	if err := registerRoutes(a); err != nil {
		a.Logger().Error("failed to register routes", logger.Error(err))
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		a.Logger().Error("application stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func registerRoutes(a *app.App) error {
	err := container.RegisterValue(a.Container(), &directory{companies: map[string]string{
		"silence": "Silence Labs",
		"acme":    "ACME Corporation",
	}})
	if err != nil {
		return err
	}

	if _, err := a.Routes().Get("/health/live", health.Liveness()); err != nil {
		return err
	}
	if _, err := a.Routes().Get("/health/ready", health.Readiness(a.Logger())); err != nil {
		return err
	}

	stack := []string{app.MiddlewareRecover, app.MiddlewareRequestID, app.MiddlewareLogging}

	return a.Routes().Group("", func(g *routing.Group) error {
		if _, err := g.Get("/hello/{name}", handler.NewFunc(hello,
			handler.String("name"),
			handler.Request("req"),
		)); err != nil {
			return err
		}

		_, err := g.Get("/companies/{company}", handler.NewFunc(showCompany,
			handler.Service[*directory]("dir"),
			handler.String("company"),
			handler.String("format").WithDefault("text"),
		))
		return err
	}, stack...)
}

func hello(args handler.Args) (response.Response, error) {
	name := handler.Arg[string](args, 0)
	req := handler.Arg[*request.Request](args, 1)
	id, _ := req.Attribute("request_id")

	return response.JSON(map[string]any{
		"greeting":   "Hello, " + name + "!",
		"request_id": id,
	}), nil
}

func showCompany(args handler.Args) (response.Response, error) {
	dir := handler.Arg[*directory](args, 0)
	slug := handler.Arg[string](args, 1)

	name, ok := dir.lookup(slug)
	if !ok {
		return nil, response.ErrNotFound.WithMessage("no such company")
	}

	if handler.Arg[string](args, 2) == "json" {
		return response.JSON(map[string]string{"slug": slug, "name": name}), nil
	}
	return response.StringWithStatus(name, http.StatusOK), nil
}
