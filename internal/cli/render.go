package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/techmarket/internal/catalog"
	"github.com/dmitrijs2005/techmarket/internal/validation"
)

func (a *App) printResult(res catalog.Result) {
	for _, p := range res.Visible {
		fmt.Fprintf(a.out, "  %-24s %-32s $%9.2f  %s\n", p.ID, p.Title, p.Price, tags(p))
	}
	fmt.Fprintln(a.out, res.Text())
}

func tags(p catalog.Product) string {
	var parts []string
	for _, t := range []struct{ label, v string }{
		{"", p.Category},
		{"", p.Brand},
		{"RAM ", p.RAM},
		{"storage ", p.Storage},
	} {
		if t.v != "" {
			parts = append(parts, t.label+t.v)
		}
	}
	return strings.Join(parts, ", ")
}

func (a *App) printFieldErrors(errs validation.Errors) {
	for _, fe := range errs {
		fmt.Fprintf(a.out, "  %s: %s\n", fe.Field, fe.Message)
	}
}

func (a *App) printFacets(fs catalog.FacetSet) {
	row := func(label string, opts []catalog.FacetOption) {
		vals := make([]string, 0, len(opts))
		for _, o := range opts {
			vals = append(vals, fmt.Sprintf("%s (%d)", o.Value, o.Count))
		}
		fmt.Fprintf(a.out, "  %-10s %s\n", label+":", strings.Join(vals, ", "))
	}
	row("category", fs.Categories)
	row("brand", fs.Brands)
	row("ram", fs.Rams)
	row("storage", fs.Storages)
	fmt.Fprintf(a.out, "  %-10s $%.2f - $%.2f\n", "price:", fs.PriceRange.Min, fs.PriceRange.Max)
}

func (a *App) printCart() {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return
	}
	for _, it := range items {
		fmt.Fprintf(a.out, "  %-24s %-32s x%-2d $%9.2f\n", it.Product.ID, it.Product.Title, it.Quantity, it.LineTotal())
	}
	s := a.cart.Summary()
	fmt.Fprintf(a.out, "  Subtotal: $%.2f\n", s.Subtotal)
	if s.Promo != "" {
		fmt.Fprintf(a.out, "  Discount (%s): -$%.2f\n", s.Promo, s.Discount)
	}
	fmt.Fprintf(a.out, "  Tax: $%.2f\n", s.Tax)
	fmt.Fprintf(a.out, "  Total: $%.2f\n", s.Total)
}
