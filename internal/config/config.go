package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/osse101/BlendBot_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port          int
	LogLevel      string
	LogFormat     string
	SearchWorkers int // concurrent search goroutines, capped at domain.MaxSearchThreads
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnv(EnvLogFormat, DefaultLogFormat),
	}

	port, err := getEnvInt(EnvPort, DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	workers, err := getEnvInt(EnvSearchWorkers, domain.MaxSearchThreads)
	if err != nil {
		return nil, err
	}
	if workers < 1 || workers > domain.MaxSearchThreads {
		return nil, fmt.Errorf("%s must be between 1 and %d, got %d", EnvSearchWorkers, domain.MaxSearchThreads, workers)
	}
	cfg.SearchWorkers = workers

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := lookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := lookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}
