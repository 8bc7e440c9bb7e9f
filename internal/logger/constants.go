package logger

// Log level string values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log format string values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service configuration values
const (
	DefaultServiceName = "blend-bot"
	DefaultVersion     = "dev"
)

// Log attribute keys
const (
	AttrKeyService   = "service"
	AttrKeyVersion   = "version"
	AttrKeyRequestID = "request_id"
)
