// Package pricing computes sell prices and mix costs in integer cents.
// All arithmetic is fixed-point to avoid floating-point drift across
// millions of candidate evaluations.
package pricing

import (
	"strings"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/effects"
)

// BasePriceCents selects a base price tier for the product. An explicit
// BasePriceCents on the product wins; otherwise the tier is matched by
// product-name substring, falling back to the default tier. Callers that
// need exact tiering should set the explicit price rather than rely on
// name matching.
func BasePriceCents(product *domain.Product) int {
	if product.BasePriceCents > 0 {
		return product.BasePriceCents
	}
	switch {
	case strings.Contains(product.Name, "Meth"):
		return domain.BasePriceTierMeth
	case strings.Contains(product.Name, "Cocaine"):
		return domain.BasePriceTierCocaine
	default:
		return domain.BasePriceTierDefault
	}
}

// SellPriceCents returns the sell price for a product carrying the given
// effects. multipliers maps effect name to a x100-scaled integer multiplier
// (0.54 -> 54). Effects absent from the table contribute nothing.
//
// Formula: base + base*totalMultiplier/100, integer division, truncating.
func SellPriceCents(product *domain.Product, current effects.Set, multipliers map[string]int) int {
	totalMultiplier := 0
	for name := range current {
		if m, ok := multipliers[name]; ok {
			totalMultiplier += m
		}
	}

	base := BasePriceCents(product)
	return base + (base*totalMultiplier)/100
}

// CostCents returns the total cost of the substances at the given catalog
// indices.
func CostCents(indices []int, substances []domain.Substance) int {
	total := 0
	for _, idx := range indices {
		total += substances[idx].CostCents
	}
	return total
}
