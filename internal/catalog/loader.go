package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var defaultCatalog []byte

type catalogFile struct {
	Products []Product `json:"products" yaml:"products"`
}

// Default returns the built-in product list.
func Default() ([]Product, error) {
	return parse(defaultCatalog, false)
}

// Load reads a catalog file. Files ending in .json are decoded as JSON,
// anything else as YAML.
func Load(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	isJSON := strings.EqualFold(filepath.Ext(path), ".json")
	products, err := parse(data, isJSON)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return products, nil
}

func parse(data []byte, isJSON bool) ([]Product, error) {
	var f catalogFile
	var err error
	if isJSON {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := validate(f.Products); err != nil {
		return nil, err
	}
	return f.Products, nil
}

func validate(products []Product) error {
	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if p.ID == "" {
			return fmt.Errorf("product #%d: missing id", i+1)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("product %s: duplicate id", p.ID)
		}
		seen[p.ID] = struct{}{}
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return fmt.Errorf("product %s: price is not a finite number", p.ID)
		}
		if p.Price < 0 {
			return fmt.Errorf("product %s: negative price", p.ID)
		}
	}
	return nil
}
