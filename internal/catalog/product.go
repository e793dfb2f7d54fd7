// Package catalog narrows the storefront product list.
//
// Apply is the filter engine: a product stays visible when its price lies
// in [PriceMin, PriceMax] and every non-empty tag set of the Criteria
// contains the product's tag. Category and brand compare case-insensitively;
// RAM and storage capacities compare as exact strings.
package catalog

// Product is a read-only catalog entry.
type Product struct {
	ID       string  `json:"id" yaml:"id"`
	Title    string  `json:"title" yaml:"title"`
	Price    float64 `json:"price" yaml:"price"`
	Category string  `json:"category,omitempty" yaml:"category"`
	Brand    string  `json:"brand,omitempty" yaml:"brand"`
	RAM      string  `json:"ram,omitempty" yaml:"ram"`
	Storage  string  `json:"storage,omitempty" yaml:"storage"`
}
