package search

import (
	"math"

	"github.com/osse101/BlendBot_Go/internal/effects"
)

// depthFirst enumerates recipes by stack-based backtracking: one MixState
// is pushed and popped in lockstep with a stack of cursor frames, so memory
// is proportional to max depth rather than to a frontier width. Repeated
// partial recomputation is mitigated by the effects cache, which is owned
// by the strategy and reused across the worker's starting substances.
//
// The explicit stack, rather than recursion, keeps call depth bounded and
// gives cancellation a single well-defined check point per iteration.
type depthFirst struct {
	cache *effects.Cache
}

func newDepthFirst(env *Env) *depthFirst {
	return &depthFirst{
		cache: effects.NewCache(env.MaxDepth, env.Product.InitialEffect, env.EnableCaching),
	}
}

// frame tracks the next substance to try at one depth of the current path.
type frame struct {
	cursor int
	depth  int
}

// searchFrom enumerates every recipe beginning with the root substance, up
// to the environment's max depth.
func (d *depthFirst) searchFrom(env *Env, root int, shared *sharedState) {
	localBest := math.MinInt

	mix := NewMixState(env.MaxDepth)
	mix.Append(root, env.Substances)
	current := d.cache.Apply(env.Substances, root, 1)

	shared.visit(1)
	shared.evaluate(env, mix, current, &localBest)

	stack := make([]frame, 0, env.MaxDepth)
	if env.MaxDepth > 1 {
		stack = append(stack, frame{cursor: 0, depth: 2})
	}

	for len(stack) > 0 {
		if shared.cancelled.Load() {
			// Cooperative stop: the MixState is worker-local, so bailing
			// here can never hand a corrupted recipe to the caller.
			return
		}

		top := &stack[len(stack)-1]

		// Exhausted the catalog at this depth: backtrack.
		if top.cursor >= len(env.Substances) {
			stack = stack[:len(stack)-1]
			if mix.Len() > 1 {
				mix.RemoveLast(env.Substances)
			}
			continue
		}

		mix.Append(top.cursor, env.Substances)
		current = d.cache.Apply(env.Substances, top.cursor, top.depth)

		shared.visit(top.depth)
		shared.evaluate(env, mix, current, &localBest)

		if top.depth < env.MaxDepth {
			// Descend: the next iteration starts at substance 0 one level
			// deeper, and this frame resumes at the next substance once
			// that subtree unwinds.
			top.cursor++
			stack = append(stack, frame{cursor: 0, depth: top.depth + 1})
		} else {
			mix.RemoveLast(env.Substances)
			top.cursor++
		}
	}
}
