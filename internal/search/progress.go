package search

import (
	"math"
	"sync"
	"time"

	"github.com/osse101/BlendBot_Go/internal/domain"
)

// ProgressFunc receives progress samples during a search. It may be invoked
// from multiple worker goroutines; implementations that write to a shared
// sink are responsible for their own locking.
type ProgressFunc func(sample domain.ProgressSample)

// EstimateTotalStates returns the total number of states a full search will
// visit: sum of substanceCount^d for d in [1, maxDepth]. The accumulator is
// 64-bit; on overflow the estimate saturates at math.MaxInt64 rather than
// wrapping, so progress totals are approximate but never garbage.
func EstimateTotalStates(substanceCount, maxDepth int) int64 {
	if substanceCount <= 0 || maxDepth <= 0 {
		return 0
	}
	count := int64(substanceCount)
	var total, level int64 = 0, 1
	for d := 1; d <= maxDepth; d++ {
		if level > math.MaxInt64/count {
			return math.MaxInt64
		}
		level *= count
		if total > math.MaxInt64-level {
			return math.MaxInt64
		}
		total += level
	}
	return total
}

// reportInterval returns the visited-state batch size between callbacks at
// the given depth.
func reportInterval(depth int) int64 {
	if depth > ProgressScaleDepth {
		return ProgressBaseInterval * int64(depth-ProgressScaleDepth+1)
	}
	return ProgressBaseInterval
}

// reporter serializes progress emission across workers. Emitted processed
// counts are strictly increasing and never exceed the estimated total, no
// matter how worker callbacks interleave. The callback runs under the
// reporter's lock so samples reach the caller in order.
type reporter struct {
	fn      ProgressFunc
	total   int64
	started time.Time

	mu      sync.Mutex
	highest int64
}

func newReporter(fn ProgressFunc, total int64) *reporter {
	return &reporter{fn: fn, total: total, started: time.Now()}
}

// report emits a sample if processed advances past every previously emitted
// value.
func (r *reporter) report(depth int, processed int64) {
	if r.fn == nil {
		return
	}
	if processed > r.total {
		processed = r.total
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if processed <= r.highest {
		return
	}
	r.highest = processed
	r.fn(domain.ProgressSample{
		Depth:          depth,
		ProcessedCount: processed,
		EstimatedTotal: r.total,
		Elapsed:        time.Since(r.started),
	})
}
