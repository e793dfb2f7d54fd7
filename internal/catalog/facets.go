package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// FacetOption is one selectable filter value with the number of products
// carrying it.
type FacetOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FacetSet lists what the filter form can offer for a product list.
type FacetSet struct {
	Categories []FacetOption `json:"categories"`
	Brands     []FacetOption `json:"brands"`
	Rams       []FacetOption `json:"rams"`
	Storages   []FacetOption `json:"storages"`
	PriceRange PriceRange    `json:"priceRange"`
}

// Facets computes the available filter values. Categories and brands are
// reported lowercased; products missing a tag do not contribute to it.
func Facets(products []Product) FacetSet {
	categories := map[string]int{}
	brands := map[string]int{}
	rams := map[string]int{}
	storages := map[string]int{}

	var fs FacetSet
	for i, p := range products {
		if i == 0 || p.Price < fs.PriceRange.Min {
			fs.PriceRange.Min = p.Price
		}
		if i == 0 || p.Price > fs.PriceRange.Max {
			fs.PriceRange.Max = p.Price
		}
		count(categories, strings.ToLower(p.Category))
		count(brands, strings.ToLower(p.Brand))
		count(rams, p.RAM)
		count(storages, p.Storage)
	}

	fs.Categories = options(categories)
	fs.Brands = options(brands)
	fs.Rams = options(rams)
	fs.Storages = options(storages)
	return fs
}

func count(m map[string]int, v string) {
	if v != "" {
		m[v]++
	}
}

func options(m map[string]int) []FacetOption {
	out := make([]FacetOption, 0, len(m))
	for v, n := range m {
		out = append(out, FacetOption{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return lessTag(out[i].Value, out[j].Value) })
	return out
}

// lessTag orders numeric capacity tags numerically and everything else
// lexically, numbers first.
func lessTag(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
