package main

import (
	"github.com/osse101/BlendBot_Go/internal/config"
	"github.com/osse101/BlendBot_Go/internal/handler"
	"github.com/osse101/BlendBot_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: logger.DefaultServiceName,
		Version:     handler.Version,
	})
}
