package effects

import "github.com/osse101/BlendBot_Go/internal/domain"

// Apply runs one substance's rules against the current effect set and
// returns the resulting set. position is the 1-based recipe position of the
// substance being applied.
//
// Condition and exclusion checks run against an immutable snapshot of the
// input, so rules see the effect set as it was before this substance, while
// mutations accumulate in the returned working set. The input set is never
// modified. Rule order is significant and preserved exactly as cataloged.
func Apply(current Set, substance *domain.Substance, position int) Set {
	original := current
	next := current.Clone()

	for i := range substance.Rules {
		rule := &substance.Rules[i]

		if !conditionsMet(original, rule.Condition) {
			continue
		}
		if anyPresent(original, rule.Exclusion) {
			continue
		}

		switch rule.Kind {
		case domain.RuleReplace:
			if rule.Replacement == "" {
				continue
			}
			// A replace whose replacement is already present is a no-op.
			// This keeps duplicate-effect states unreachable and is
			// rule-order sensitive; downstream pricing depends on it.
			if next.Contains(rule.Target) && !next.Contains(rule.Replacement) {
				next.Remove(rule.Target)
				next.Add(rule.Replacement)
			}
		case domain.RuleAdd:
			if !next.Contains(rule.Target) {
				next.Add(rule.Target)
			}
		}
	}

	// Recipes at position >= DefaultEffectCutoff no longer receive the
	// substance's default effect.
	if position < domain.DefaultEffectCutoff {
		next.Add(substance.DefaultEffect)
	}

	return next
}

// ApplyChain computes the effect set for a full substance sequence starting
// from the product's initial effect. Used by callers that have no cache.
func ApplyChain(initialEffect string, substances []domain.Substance, indices []int) Set {
	current := NewSet(initialEffect)
	for i, idx := range indices {
		current = Apply(current, &substances[idx], i+1)
	}
	return current
}

func conditionsMet(s Set, required []string) bool {
	for _, name := range required {
		if !s.Contains(name) {
			return false
		}
	}
	return true
}

func anyPresent(s Set, names []string) bool {
	for _, name := range names {
		if s.Contains(name) {
			return true
		}
	}
	return false
}
