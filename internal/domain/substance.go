package domain

// RuleKind identifies how a substance rule mutates the effect set.
type RuleKind string

const (
	// RuleReplace swaps the target effect for the replacement effect.
	RuleReplace RuleKind = "replace"

	// RuleAdd adds the target effect directly.
	RuleAdd RuleKind = "add"
)

// SubstanceRule is one conditional effect transformation. Rules are evaluated
// in catalog order and every matching rule applies; there is no first-match
// cutoff.
type SubstanceRule struct {
	Kind        RuleKind `json:"kind"`
	Condition   []string `json:"condition"`
	Exclusion   []string `json:"exclusion,omitempty"`
	Target      string   `json:"target"`
	Replacement string   `json:"replacement,omitempty"`
}

// Substance is one catalog ingredient. Cost is in integer cents.
type Substance struct {
	Name          string          `json:"name"`
	CostCents     int             `json:"cost"`
	DefaultEffect string          `json:"defaultEffect"`
	Rules         []SubstanceRule `json:"rules,omitempty"`
}

// Product is the base product substances are blended into.
// BasePriceCents of zero means the price tier is derived from the name.
type Product struct {
	Name           string `json:"name"`
	InitialEffect  string `json:"initialEffect"`
	BasePriceCents int    `json:"basePriceCents,omitempty"`
}
