package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/effects"
)

func TestBasePriceCents(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		want    int
	}{
		{"meth tier", domain.Product{Name: "Meth"}, domain.BasePriceTierMeth},
		{"meth substring", domain.Product{Name: "Blue Meth"}, domain.BasePriceTierMeth},
		{"cocaine tier", domain.Product{Name: "Cocaine"}, domain.BasePriceTierCocaine},
		{"default tier", domain.Product{Name: "OG Kush"}, domain.BasePriceTierDefault},
		{"explicit override wins", domain.Product{Name: "Meth", BasePriceCents: 101}, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BasePriceCents(&tt.product))
		})
	}
}

func TestSellPriceCents(t *testing.T) {
	multipliers := map[string]int{
		"Calming":   10,
		"Euphoric":  18,
		"Toxic":     0,
		"Glowing":   48,
	}

	t.Run("sums multipliers of present effects", func(t *testing.T) {
		product := domain.Product{Name: "OG Kush"}
		got := SellPriceCents(&product, effects.NewSet("Calming", "Euphoric"), multipliers)

		// 3500 + 3500*28/100
		assert.Equal(t, 4480, got)
	})

	t.Run("unknown effects contribute nothing", func(t *testing.T) {
		product := domain.Product{Name: "OG Kush"}
		got := SellPriceCents(&product, effects.NewSet("Calming", "Unpriced"), multipliers)

		assert.Equal(t, 3850, got)
	})

	t.Run("integer division truncates", func(t *testing.T) {
		product := domain.Product{Name: "X", BasePriceCents: 101}
		got := SellPriceCents(&product, effects.NewSet("Glowing"), multipliers)

		// 101 + 101*48/100 = 101 + 48.48 -> 101 + 48
		assert.Equal(t, 149, got)
	})

	t.Run("no effects sell at base", func(t *testing.T) {
		product := domain.Product{Name: "Cocaine"}
		got := SellPriceCents(&product, effects.NewSet(), multipliers)

		assert.Equal(t, domain.BasePriceTierCocaine, got)
	})
}

func TestCostCents(t *testing.T) {
	substances := []domain.Substance{
		{Name: "Cuke", CostCents: 200},
		{Name: "Banana", CostCents: 200},
		{Name: "Mega Bean", CostCents: 900},
	}

	assert.Equal(t, 0, CostCents(nil, substances))
	assert.Equal(t, 1100, CostCents([]int{0, 2}, substances))
	assert.Equal(t, 600, CostCents([]int{1, 1, 0}, substances))
}
