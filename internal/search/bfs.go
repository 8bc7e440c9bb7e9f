package search

import (
	"math"

	"github.com/osse101/BlendBot_Go/internal/effects"
)

// breadthFirst enumerates recipes level by level: every depth-d state is
// fully processed before any depth-(d+1) state begins. Each frontier entry
// carries its effect set, so a child's effects derive from its parent in
// one rule application; the price of that locality is holding an entire
// level in memory at once, which is why the depth-first strategy exists.
type breadthFirst struct{}

type frontierEntry struct {
	mix     *MixState
	effects effects.Set
}

// searchFrom enumerates every recipe beginning with the root substance, up
// to the environment's max depth.
func (breadthFirst) searchFrom(env *Env, root int, shared *sharedState) {
	localBest := math.MinInt

	rootMix := NewMixState(env.MaxDepth)
	rootMix.Append(root, env.Substances)
	initial := effects.NewSet(env.Product.InitialEffect)

	frontier := []frontierEntry{{
		mix:     rootMix,
		effects: effects.Apply(initial, &env.Substances[root], 1),
	}}
	depth := 1

	for len(frontier) > 0 {
		var next []frontierEntry
		if depth < env.MaxDepth {
			next = make([]frontierEntry, 0, len(frontier)*len(env.Substances))
		}

		for _, entry := range frontier {
			if shared.cancelled.Load() {
				return
			}

			shared.visit(depth)
			shared.evaluate(env, entry.mix, entry.effects, &localBest)

			if depth < env.MaxDepth {
				for i := range env.Substances {
					child := entry.mix.Clone()
					child.Append(i, env.Substances)
					next = append(next, frontierEntry{
						mix:     child,
						effects: effects.Apply(entry.effects, &env.Substances[i], depth+1),
					})
				}
			}
		}

		frontier = next
		depth++
	}
}
