package app

import (
	"log/slog"

	"github.com/dmitrymomot/dispatch/core/server"
)

// Config is the application configuration read from the environment.
type Config struct {
	Server server.Config

	AppName  string `env:"APP_NAME" envDefault:"dispatchd"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LenientBinding defers unresolved handler parameters to call time
	// instead of failing route resolution.
	LenientBinding bool `env:"DISPATCH_LENIENT_BINDING" envDefault:"false"`
}

// Level parses LogLevel, falling back to info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// DefaultConfig returns the configuration used when the environment is empty.
func DefaultConfig() Config {
	return Config{
		Server:   server.DefaultConfig(),
		AppName:  "dispatchd",
		Env:      "development",
		LogLevel: "info",
	}
}
