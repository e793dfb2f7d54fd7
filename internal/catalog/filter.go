package catalog

import (
	"fmt"
	"strings"
)

type tagSet map[string]struct{}

func newTagSet(values []string, fold bool) tagSet {
	set := make(tagSet, len(values))
	for _, v := range values {
		if fold {
			v = strings.ToLower(strings.TrimSpace(v))
		}
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

// allows reports whether v passes the set. An empty set allows everything,
// a non-empty set never allows a missing tag.
func (s tagSet) allows(v string) bool {
	if len(s) == 0 {
		return true
	}
	if v == "" {
		return false
	}
	_, ok := s[v]
	return ok
}

type matcher struct {
	min, max   float64
	categories tagSet
	brands     tagSet
	rams       tagSet
	storages   tagSet
}

func newMatcher(c Criteria) matcher {
	return matcher{
		min:        c.minPrice(),
		max:        c.maxPrice(),
		categories: newTagSet(c.Categories, true),
		brands:     newTagSet(c.Brands, true),
		rams:       newTagSet(c.Rams, false),
		storages:   newTagSet(c.Storages, false),
	}
}

func (m matcher) match(p Product) bool {
	return p.Price >= m.min && p.Price <= m.max &&
		m.categories.allows(strings.ToLower(p.Category)) &&
		m.brands.allows(strings.ToLower(p.Brand)) &&
		m.rams.allows(p.RAM) &&
		m.storages.allows(p.Storage)
}

// Apply returns the products matching c, in input order, and their count.
func Apply(products []Product, c Criteria) ([]Product, int) {
	m := newMatcher(c)
	visible := make([]Product, 0, len(products))
	for _, p := range products {
		if m.match(p) {
			visible = append(visible, p)
		}
	}
	return visible, len(visible)
}

// Matches reports whether a single product satisfies c.
func Matches(p Product, c Criteria) bool {
	return newMatcher(c).match(p)
}

// ResultsText renders the result counter shown after filtering.
func ResultsText(n int) string {
	return fmt.Sprintf("%d products found", n)
}
