// Package config loads typed configuration structs from the environment.
//
// Fields are parsed with caarlos0/env, so structs declare their variables
// with `env` and `envDefault` tags. A .env file in the working directory is
// read on the first Load; variables already set in the process win.
//
// The application configuration nests the server settings, and both are
// filled by a single call:
//
//	var cfg app.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	srv, err := server.NewFromConfig(cfg.Server, server.WithHandler(h))
//
// Variables read this way include APP_ENV, LOG_LEVEL,
// DISPATCH_LENIENT_BINDING, SERVER_ADDR and the SERVER_*_TIMEOUT family.
//
// Each struct type is parsed once. Later calls for the same type copy the
// cached value, so changes to the environment after startup are not seen.
// Tests that set variables call Reset first:
//
//	t.Setenv("SERVER_ADDR", ":9090")
//	config.Reset()
//	config.MustLoad(&cfg)
package config
