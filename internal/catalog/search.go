package catalog

import "strings"

// Search keeps the products whose title, brand, category, RAM or storage
// contains query, case-insensitively. A blank query keeps everything.
func Search(products []Product, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]Product, len(products))
		copy(out, products)
		return out
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		haystack := strings.ToLower(strings.Join([]string{p.Title, p.Brand, p.Category, p.RAM, p.Storage}, " "))
		if strings.Contains(haystack, q) {
			out = append(out, p)
		}
	}
	return out
}
