package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BlendBot_Go/internal/domain"
)

func TestApply(t *testing.T) {
	cuke := domain.Substance{
		Name:          "Cuke",
		CostCents:     200,
		DefaultEffect: "Energizing",
		Rules: []domain.SubstanceRule{
			{Kind: domain.RuleReplace, Target: "Calming", Replacement: "Bright-Eyed"},
		},
	}

	t.Run("replace fires and default effect is added", func(t *testing.T) {
		got := Apply(NewSet("Calming"), &cuke, 1)

		assert.True(t, got.Contains("Bright-Eyed"))
		assert.True(t, got.Contains("Energizing"))
		assert.False(t, got.Contains("Calming"))
		assert.Len(t, got, 2)
	})

	t.Run("replace target absent is a no-op", func(t *testing.T) {
		got := Apply(NewSet("Toxic"), &cuke, 1)

		assert.True(t, got.Contains("Toxic"))
		assert.True(t, got.Contains("Energizing"))
		assert.False(t, got.Contains("Bright-Eyed"))
	})

	t.Run("replace collision leaves target in place", func(t *testing.T) {
		// Replacement already present: the set must not lose Calming.
		got := Apply(NewSet("Calming", "Bright-Eyed"), &cuke, 1)

		assert.True(t, got.Contains("Calming"))
		assert.True(t, got.Contains("Bright-Eyed"))
	})

	t.Run("no default effect at cutoff position", func(t *testing.T) {
		got := Apply(NewSet("Calming"), &cuke, domain.DefaultEffectCutoff)

		assert.False(t, got.Contains("Energizing"))
		assert.True(t, got.Contains("Bright-Eyed"))
	})

	t.Run("default effect at position just below cutoff", func(t *testing.T) {
		got := Apply(NewSet(), &cuke, domain.DefaultEffectCutoff-1)

		assert.True(t, got.Contains("Energizing"))
	})

	t.Run("input set is never mutated", func(t *testing.T) {
		in := NewSet("Calming")
		_ = Apply(in, &cuke, 1)

		assert.Len(t, in, 1)
		assert.True(t, in.Contains("Calming"))
	})
}

func TestApplyConditionsAndExclusions(t *testing.T) {
	sub := domain.Substance{
		Name:          "Banana",
		DefaultEffect: "Gingeritis",
		Rules: []domain.SubstanceRule{
			{Kind: domain.RuleAdd, Condition: []string{"Energizing"}, Target: "Sneaky"},
			{Kind: domain.RuleReplace, Exclusion: []string{"Cyclopean"}, Target: "Smelly", Replacement: "Anti-Gravity"},
		},
	}

	t.Run("condition unmet skips rule", func(t *testing.T) {
		got := Apply(NewSet("Calming"), &sub, 1)

		assert.False(t, got.Contains("Sneaky"))
	})

	t.Run("condition met applies add", func(t *testing.T) {
		got := Apply(NewSet("Energizing"), &sub, 1)

		assert.True(t, got.Contains("Sneaky"))
	})

	t.Run("exclusion present skips rule", func(t *testing.T) {
		got := Apply(NewSet("Smelly", "Cyclopean"), &sub, 1)

		assert.True(t, got.Contains("Smelly"))
		assert.False(t, got.Contains("Anti-Gravity"))
	})

	t.Run("exclusion absent applies replace", func(t *testing.T) {
		got := Apply(NewSet("Smelly"), &sub, 1)

		assert.False(t, got.Contains("Smelly"))
		assert.True(t, got.Contains("Anti-Gravity"))
	})
}

// Conditions evaluate against the set as it was before this substance, not
// against effects earlier rules of the same substance just produced.
func TestApplyConditionsSeeSnapshot(t *testing.T) {
	sub := domain.Substance{
		Name:          "Mega Bean",
		DefaultEffect: "Foggy",
		Rules: []domain.SubstanceRule{
			{Kind: domain.RuleAdd, Target: "Laxative"},
			{Kind: domain.RuleAdd, Condition: []string{"Laxative"}, Target: "Paranoia"},
		},
	}

	got := Apply(NewSet("Calming"), &sub, 1)

	assert.True(t, got.Contains("Laxative"))
	assert.False(t, got.Contains("Paranoia"))
}

func TestApplyChain(t *testing.T) {
	substances := []domain.Substance{
		{Name: "Cuke", DefaultEffect: "Energizing", Rules: []domain.SubstanceRule{
			{Kind: domain.RuleReplace, Target: "Calming", Replacement: "Bright-Eyed"},
		}},
		{Name: "Donut", DefaultEffect: "Calorie-Dense"},
	}

	got := ApplyChain("Calming", substances, []int{0, 1})

	assert.ElementsMatch(t, []string{"Bright-Eyed", "Energizing", "Calorie-Dense"}, got.Names())
}
