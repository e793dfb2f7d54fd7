package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/techmarket/internal/catalog"
)

// parseFilterArgs builds criteria from key=value tokens such as
// "category=laptop,phone max=1500". Unspecified keys keep their defaults.
func parseFilterArgs(args []string) (catalog.Criteria, error) {
	c := catalog.Clear()
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return c, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch strings.ToLower(key) {
		case "category", "categories":
			c.Categories = splitList(value)
		case "brand", "brands":
			c.Brands = splitList(value)
		case "ram", "rams":
			c.Rams = splitList(value)
		case "storage", "storages":
			c.Storages = splitList(value)
		case "min", "price-min":
			v, err := parsePrice(value)
			if err != nil {
				return c, fmt.Errorf("min: %w", err)
			}
			c.PriceMin = v
		case "max", "price-max":
			v, err := parsePrice(value)
			if err != nil {
				return c, fmt.Errorf("max: %w", err)
			}
			if v == 0 {
				v = math.Inf(1)
			}
			c.PriceMax = v
		default:
			return c, fmt.Errorf("unknown filter %q", key)
		}
	}
	return c, nil
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parsePrice(s string) (float64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	return v, nil
}
