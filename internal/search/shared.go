package search

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/effects"
	"github.com/osse101/BlendBot_Go/internal/pricing"
)

// Env is the immutable search environment shared by every worker. Nothing
// in it is mutated once a search starts.
type Env struct {
	Product     *domain.Product
	Substances  []domain.Substance
	Multipliers map[string]int
	MaxDepth    int

	// EnableCaching toggles the hashing memo in the effects cache. Both
	// settings must produce identical results.
	EnableCaching bool
}

// bestSlot is the single shared best-result slot. Updates go through
// tryUpdate only: a strict check-and-set under one lock, so a stale thread
// can never overwrite a better result and readers never observe a
// half-written one.
type bestSlot struct {
	mu          sync.Mutex
	result      domain.SearchResult
	profitCents int
	set         bool
}

func newBestSlot() *bestSlot {
	return &bestSlot{profitCents: math.MinInt}
}

// tryUpdate installs the candidate if its profit strictly exceeds the
// current best. Returns whether the candidate was accepted. onAccept runs
// under the slot's lock when the candidate is accepted, so notifications
// leave in acceptance order; it must not call back into the slot.
func (b *bestSlot) tryUpdate(candidate domain.SearchResult, onAccept func(domain.SearchResult)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if candidate.ProfitCents <= b.profitCents && b.set {
		return false
	}
	b.result = candidate
	b.profitCents = candidate.ProfitCents
	b.set = true
	if onAccept != nil {
		onAccept(candidate)
	}
	return true
}

// snapshot returns a copy of the current best taken under the lock.
func (b *bestSlot) snapshot() (domain.SearchResult, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.result, b.set
}

// sharedState is the complete cross-worker mutable state of one search:
// the best slot, the processed counter, and the cancellation flag. Every
// other structure is worker-local.
type sharedState struct {
	best      *bestSlot
	processed atomic.Int64
	cancelled atomic.Bool
	reporter  *reporter
	onBest    func(domain.SearchResult)
}

// visit accounts for one enumerated state and drives batched progress
// reporting.
func (s *sharedState) visit(depth int) {
	n := s.processed.Add(1)
	if n%reportInterval(depth) == 0 {
		s.reporter.report(depth, n)
	}
}

// evaluate prices the current mix and promotes it through the local and
// shared best tracking. localBest keeps workers off the shared lock except
// when they have a genuine improvement.
func (s *sharedState) evaluate(env *Env, mix *MixState, current effects.Set, localBest *int) {
	sell := pricing.SellPriceCents(env.Product, current, env.Multipliers)
	cost := mix.CostCents()
	profit := sell - cost

	if profit <= *localBest {
		return
	}
	*localBest = profit

	candidate := domain.SearchResult{
		Mix:            mix.Names(env.Substances),
		ProfitCents:    profit,
		SellPriceCents: sell,
		CostCents:      cost,
	}
	s.best.tryUpdate(candidate, s.onBest)
}
