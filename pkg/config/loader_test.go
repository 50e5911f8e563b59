package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/attestkit/pkg/config"
)

type defaultsConfig struct {
	Addr    string `env:"ATTEST_TEST_ADDR" envDefault:":8080"`
	Retries int    `env:"ATTEST_TEST_RETRIES" envDefault:"3"`
	Enabled bool   `env:"ATTEST_TEST_ENABLED" envDefault:"true"`
}

type overrideConfig struct {
	Addr string `env:"ATTEST_TEST_OVERRIDE_ADDR" envDefault:":8080"`
}

type cachedConfig struct {
	Value string `env:"ATTEST_TEST_CACHED"`
}

type requiredConfig struct {
	Key string `env:"ATTEST_TEST_REQUIRED,required"`
}

type fileConfig struct {
	FromFile string `env:"ATTEST_TEST_FROM_FILE"`
	Preset   string `env:"ATTEST_TEST_PRESET"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 3, cfg.Retries)
	assert.True(t, cfg.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ATTEST_TEST_OVERRIDE_ADDR", ":9090")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("ATTEST_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("ATTEST_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.Reset()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("ATTEST_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ATTEST_TEST_PRESET", "process_value")
	t.Cleanup(func() { os.Unsetenv("ATTEST_TEST_FROM_FILE") })

	require.NoError(t, config.LoadEnv("testdata/app.env"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.FromFile)
	assert.Equal(t, "process_value", cfg.Preset, "existing variables win over the file")

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnv)
}
