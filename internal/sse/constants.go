package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE, mirroring the bus event types
const (
	EventTypeSearchStarted   = "search.started"
	EventTypeSearchProgress  = "search.progress"
	EventTypeSearchBestMix   = "search.best_mix"
	EventTypeSearchCompleted = "search.completed"
	EventTypeSearchFailed    = "search.failed"
	EventTypeKeepalive       = "keepalive"
	EventTypeConnected       = "connected"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscriberReady    = "SSE subscriber registered for search events"
)
