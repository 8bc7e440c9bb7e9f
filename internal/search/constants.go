package search

// Progress reporting cadence
const (
	// ProgressBaseInterval is the number of visited states between progress
	// callbacks at shallow depths.
	ProgressBaseInterval = 1000

	// ProgressScaleDepth is the depth beyond which the reporting interval
	// grows with depth, so callback overhead does not dominate at
	// exponentially larger state counts. Past this depth the interval is
	// ProgressBaseInterval * (depth - ProgressScaleDepth + 1).
	ProgressScaleDepth = 5
)

// Log messages
const (
	LogMsgSearchStarted     = "Search started"
	LogMsgSearchCompleted   = "Search completed"
	LogMsgSearchCancelled   = "Search cancelled, returning partial best"
	LogMsgTotalSaturated    = "Combination estimate saturated, progress totals are approximate"
)
