package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/techmarket/internal/common"
	"github.com/dmitrijs2005/techmarket/internal/logging"
	"github.com/dmitrijs2005/techmarket/internal/storage"
)

// Result is the visible product list after search and filters.
type Result struct {
	Visible []Product
	Count   int
}

func (r Result) Text() string {
	return ResultsText(r.Count)
}

// Catalog holds the product list with the current search text and filter
// criteria. Both are persisted together so a restart restores the view.
type Catalog struct {
	products []Product
	store    storage.Store
	logger   logging.Logger

	search   string
	criteria Criteria
}

func New(products []Product, store storage.Store, logger logging.Logger) *Catalog {
	return &Catalog{
		products: products,
		store:    store,
		logger:   logger.With("component", "catalog"),
		criteria: Clear(),
	}
}

func (c *Catalog) Products() []Product { return c.products }

func (c *Catalog) SearchText() string { return c.search }

func (c *Catalog) Criteria() Criteria { return c.criteria }

// Find returns the product with the given id.
func (c *Catalog) Find(id string) (Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("product %q: %w", id, common.ErrNotFound)
}

// View applies the current search text, then the current criteria.
func (c *Catalog) View() Result {
	visible, n := Apply(Search(c.products, c.search), c.criteria)
	return Result{Visible: visible, Count: n}
}

func (c *Catalog) SetSearch(ctx context.Context, query string) Result {
	c.search = query
	c.persist(ctx)
	return c.View()
}

func (c *Catalog) SetCriteria(ctx context.Context, cr Criteria) Result {
	c.criteria = cr
	c.persist(ctx)
	return c.View()
}

// ClearFilters resets the criteria and keeps the search text.
func (c *Catalog) ClearFilters(ctx context.Context) Result {
	c.criteria.Reset()
	c.persist(ctx)
	return c.View()
}

// Facets describes the filter values available in the full product list.
func (c *Catalog) Facets() FacetSet {
	return Facets(c.products)
}

// Restore loads the persisted search text and criteria. Missing or corrupt
// values fall back to defaults.
func (c *Catalog) Restore(ctx context.Context) {
	c.search = ""
	c.criteria = Clear()

	if raw, err := c.store.Get(ctx, common.CatalogSearchKey); err != nil {
		c.logger.Warn(ctx, "search state unavailable", "error", err)
	} else if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c.search); err != nil {
			c.logger.Warn(ctx, "search state corrupt, ignoring", "error", err)
			c.search = ""
		}
	}

	if raw, err := c.store.Get(ctx, common.CatalogFiltersKey); err != nil {
		c.logger.Warn(ctx, "filter state unavailable", "error", err)
	} else if len(raw) > 0 {
		var cr Criteria
		if err := json.Unmarshal(raw, &cr); err != nil {
			c.logger.Warn(ctx, "filter state corrupt, ignoring", "error", err)
		} else {
			c.criteria = cr
		}
	}

	c.logger.Debug(ctx, "catalog state restored", "search", c.search, "filtered", !c.criteria.IsZero())
}

func (c *Catalog) persist(ctx context.Context) {
	search, err := json.Marshal(c.search)
	if err != nil {
		c.logger.Error(ctx, "encode search state", "error", err)
		return
	}
	filters, err := json.Marshal(c.criteria)
	if err != nil {
		c.logger.Error(ctx, "encode filter state", "error", err)
		return
	}

	err = c.store.SetAll(ctx, map[string][]byte{
		common.CatalogSearchKey:  search,
		common.CatalogFiltersKey: filters,
	})
	if err != nil {
		c.logger.Warn(ctx, "catalog state not persisted", "error", err)
	}
}
