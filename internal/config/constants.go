package config

import "os"

// Environment variable names
const (
	EnvPort          = "PORT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvSearchWorkers = "SEARCH_WORKERS"
)

// Defaults
const (
	DefaultPort      = 8080
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// lookupEnv is an indirection point for tests.
var lookupEnv = os.LookupEnv
