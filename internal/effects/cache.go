package effects

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/BlendBot_Go/internal/domain"
)

// MemoCacheSize is the maximum number of memoized effect-set entries held
// by one worker's cache.
const MemoCacheSize = 8192

// Cache memoizes effect-set computations for one worker's traversal.
// It is not safe for concurrent use; each search worker owns its own.
//
// Two layers:
//   - a depth chain holding the effect set produced at each depth of the
//     current path, giving O(1) reuse when backtracking shares a prefix;
//   - an LRU memo keyed by (substance index, default-effect regime,
//     parent-set signature), which skips rule evaluation entirely on a hit.
//
// The memo layer is a togglable optimization. With hashing disabled the
// cache always recomputes from the parent set, and both modes must produce
// identical results.
type Cache struct {
	depthChain []Set
	memo       *lru.Cache[uint64, Set]
	hashing    bool
}

// NewCache creates a cache for one traversal. Depth 0 of the chain holds
// the product's initial effect.
func NewCache(maxDepth int, initialEffect string, enableHashing bool) *Cache {
	c := &Cache{
		depthChain: make([]Set, maxDepth+1),
		hashing:    enableHashing,
	}
	c.depthChain[0] = NewSet(initialEffect)
	if enableHashing {
		// Only errors on a non-positive size.
		c.memo, _ = lru.New[uint64, Set](MemoCacheSize)
	}
	return c
}

// AtDepth returns the effect set cached for the given depth of the current
// path. Depth 0 is the initial effect.
func (c *Cache) AtDepth(depth int) Set {
	return c.depthChain[depth]
}

// Apply computes the effect set for appending substanceIndex at the given
// 1-based depth, using the depth-(depth-1) chain entry as the parent. The
// result is stored in the chain at depth and memoized when hashing is on.
func (c *Cache) Apply(substances []domain.Substance, substanceIndex, depth int) Set {
	parent := c.depthChain[depth-1]

	if c.hashing {
		key := memoKey(substanceIndex, depth, parent)
		if cached, ok := c.memo.Get(key); ok {
			c.depthChain[depth] = cached
			return cached
		}
		result := Apply(parent, &substances[substanceIndex], depth)
		c.memo.Add(key, result)
		c.depthChain[depth] = result
		return result
	}

	result := Apply(parent, &substances[substanceIndex], depth)
	c.depthChain[depth] = result
	return result
}

// memoKey fingerprints one Apply call. The result depends on the substance,
// the parent set, and whether the position is past the default-effect
// cutoff, so the cutoff regime is folded in as a high bit.
func memoKey(substanceIndex, position int, parent Set) uint64 {
	key := uint64(substanceIndex)<<32 ^ parent.Signature()
	if position >= domain.DefaultEffectCutoff {
		key ^= 1 << 63
	}
	return key
}
