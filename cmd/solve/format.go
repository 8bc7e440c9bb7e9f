package main

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/optimizer"
)

const roundElapsedTo = 100 * time.Millisecond

var printer = message.NewPrinter(language.AmericanEnglish)

// dollars renders integer cents as a grouped dollar amount, e.g. $1,234.56.
func dollars(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return printer.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func printSummary(w io.Writer, req *optimizer.Request, result *domain.SearchResult) {
	fmt.Fprintf(w, "Product: %s\n", req.Product.Name)
	if len(result.Mix) == 0 {
		fmt.Fprintln(w, "Best mix: (sell unmixed)")
	} else {
		fmt.Fprintf(w, "Best mix: %v\n", result.Mix)
	}
	fmt.Fprintf(w, "Sell price: %s\n", dollars(result.SellPriceCents))
	fmt.Fprintf(w, "Cost:       %s\n", dollars(result.CostCents))
	fmt.Fprintf(w, "Profit:     %s\n", dollars(result.ProfitCents))
}
