package domain

// Engine limits. These are hard configuration ceilings, not silent
// truncation points: requests exceeding them are rejected at validation.
const (
	// MaxMixDepth is the longest recipe the engine will evaluate.
	MaxMixDepth = 10

	// MaxSearchThreads caps the number of concurrent search workers.
	MaxSearchThreads = 16

	// DefaultEffectCutoff is the recipe position at and beyond which a
	// substance's default effect is no longer added (late-game rule).
	DefaultEffectCutoff = 9
)

// Base price tiers in cents, selected by product-name substring matching.
const (
	BasePriceTierDefault = 3500
	BasePriceTierMeth    = 7000
	BasePriceTierCocaine = 15000
)
