package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/optimizer"
)

func TestDollars(t *testing.T) {
	tests := []struct {
		name  string
		cents int
		want  string
	}{
		{"zero", 0, "$0.00"},
		{"under a dollar", 99, "$0.99"},
		{"whole dollars", 3500, "$35.00"},
		{"grouped thousands", 123456, "$1,234.56"},
		{"negative", -250, "-$2.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dollars(tt.cents))
		})
	}
}

func TestPrintSummary(t *testing.T) {
	req := &optimizer.Request{Product: optimizer.ProductInput{Name: "Meth"}}

	t.Run("with mix", func(t *testing.T) {
		var buf bytes.Buffer
		printSummary(&buf, req, &domain.SearchResult{
			Mix:            []string{"Cuke", "Banana"},
			ProfitCents:    4280,
			SellPriceCents: 4580,
			CostCents:      300,
		})

		out := buf.String()
		assert.Contains(t, out, "Product: Meth")
		assert.Contains(t, out, "[Cuke Banana]")
		assert.Contains(t, out, "$42.80")
	})

	t.Run("empty mix", func(t *testing.T) {
		var buf bytes.Buffer
		printSummary(&buf, req, &domain.SearchResult{})

		assert.Contains(t, buf.String(), "(sell unmixed)")
	})
}
