package worker

// Log messages
const (
	LogMsgSearchJobAccepted   = "Search job accepted"
	LogMsgSearchJobStarted    = "Search job started"
	LogMsgSearchJobFinished   = "Search job finished"
	LogMsgSearchJobCancelled  = "Search job cancel requested"
	LogMsgEventPublishFailed  = "Failed to publish search event"
	LogMsgShutdownStarted     = "Shutting down search worker"
	LogMsgShutdownComplete    = "Search worker shutdown complete"
	LogMsgShutdownTimeout     = "Search worker shutdown timeout"
)
