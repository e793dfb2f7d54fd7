package catalog

import (
	"encoding/json"
	"math"
)

// Criteria is the filter form state. Empty tag sets impose no constraint.
//
// A PriceMax of 0 or NaN is treated as unbounded, the same way the
// storefront form treats an empty or zero "max price" field, so the zero
// value matches every product. A negative PriceMax matches nothing.
type Criteria struct {
	PriceMin   float64
	PriceMax   float64
	Categories []string
	Brands     []string
	Rams       []string
	Storages   []string
}

// Clear returns the default criteria: PriceMin 0, PriceMax +Inf, no tags.
func Clear() Criteria {
	return Criteria{PriceMax: math.Inf(1)}
}

// Reset restores c to Clear().
func (c *Criteria) Reset() {
	*c = Clear()
}

// IsZero reports whether c imposes no constraint at all.
func (c Criteria) IsZero() bool {
	return c.minPrice() == 0 && math.IsInf(c.maxPrice(), 1) &&
		len(c.Categories) == 0 && len(c.Brands) == 0 &&
		len(c.Rams) == 0 && len(c.Storages) == 0
}

func (c Criteria) minPrice() float64 {
	if math.IsNaN(c.PriceMin) {
		return 0
	}
	return c.PriceMin
}

func (c Criteria) maxPrice() float64 {
	if c.PriceMax == 0 || math.IsNaN(c.PriceMax) {
		return math.Inf(1)
	}
	return c.PriceMax
}

type criteriaJSON struct {
	PriceMin   float64  `json:"priceMin"`
	PriceMax   *float64 `json:"priceMax,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Brands     []string `json:"brands,omitempty"`
	Rams       []string `json:"rams,omitempty"`
	Storages   []string `json:"storages,omitempty"`
}

// MarshalJSON omits priceMax when it is unbounded; JSON has no +Inf.
func (c Criteria) MarshalJSON() ([]byte, error) {
	out := criteriaJSON{
		PriceMin:   c.minPrice(),
		Categories: c.Categories,
		Brands:     c.Brands,
		Rams:       c.Rams,
		Storages:   c.Storages,
	}
	if upper := c.maxPrice(); !math.IsInf(upper, 1) {
		out.PriceMax = &upper
	}
	return json.Marshal(out)
}

func (c *Criteria) UnmarshalJSON(data []byte) error {
	var in criteriaJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*c = Criteria{
		PriceMin:   in.PriceMin,
		PriceMax:   math.Inf(1),
		Categories: in.Categories,
		Brands:     in.Brands,
		Rams:       in.Rams,
		Storages:   in.Storages,
	}
	if in.PriceMax != nil {
		c.PriceMax = *in.PriceMax
	}
	return nil
}
