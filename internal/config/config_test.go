package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BlendBot_Go/internal/domain"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	orig := lookupEnv
	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	t.Cleanup(func() { lookupEnv = orig })
}

func TestLoadDefaults(t *testing.T) {
	withEnv(t, map[string]string{})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, domain.MaxSearchThreads, cfg.SearchWorkers)
}

func TestLoadFromEnv(t *testing.T) {
	withEnv(t, map[string]string{
		EnvPort:          "9090",
		EnvLogLevel:      "debug",
		EnvSearchWorkers: "4",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.SearchWorkers)
}

func TestLoadInvalidPort(t *testing.T) {
	withEnv(t, map[string]string{EnvPort: "not-a-number"})

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadWorkersOutOfRange(t *testing.T) {
	for _, workers := range []string{"0", "-3", "64"} {
		withEnv(t, map[string]string{EnvSearchWorkers: workers})

		_, err := Load()
		assert.Error(t, err, "workers=%s", workers)
	}
}
