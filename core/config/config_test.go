package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/config"
)

type serverConfig struct {
	Addr        string        `env:"TEST_SERVER_ADDR" envDefault:":8080"`
	ReadTimeout time.Duration `env:"TEST_SERVER_READ_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

type cachedConfig struct {
	Name string `env:"TEST_CACHED_NAME" envDefault:"first"`
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("TEST_SERVER_READ_TIMEOUT", "2s")
	config.Reset()

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
}

func TestLoadRequired(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_REQUIRED_SECRET")

	assert.Panics(t, func() {
		config.MustLoad(&requiredConfig{})
	})
}

func TestLoadCachesPerType(t *testing.T) {
	config.Reset()

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Name)

	t.Setenv("TEST_CACHED_NAME", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)

	config.Reset()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Name)
}

func TestLoadNilDestination(t *testing.T) {
	assert.Error(t, config.Load[serverConfig](nil))
}
