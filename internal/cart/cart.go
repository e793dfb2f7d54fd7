// Package cart keeps the shopping cart: line items with bounded
// quantities, an optional promo code and the order summary.
package cart

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/techmarket/internal/catalog"
	"github.com/dmitrijs2005/techmarket/internal/common"
)

const (
	MinQuantity = 1
	MaxQuantity = 10
	TaxRate     = 0.08
)

var (
	ErrQuantityLimit = errors.New("quantity limit reached")
	ErrUnknownPromo  = errors.New("invalid promo code")
)

// promoCodes maps an upper-case code to its discount rate.
var promoCodes = map[string]float64{
	"SAVE10":    0.10,
	"WELCOME20": 0.20,
	"TECH15":    0.15,
}

type Item struct {
	Product  catalog.Product
	Quantity int
}

func (i Item) LineTotal() float64 {
	return roundCents(i.Product.Price * float64(i.Quantity))
}

type Summary struct {
	Items    int
	Subtotal float64
	Discount float64
	Tax      float64
	Total    float64
	Promo    string
}

// Cart is not safe for concurrent use; the terminal client drives it from
// a single goroutine.
type Cart struct {
	items []Item
	promo string
}

func New() *Cart {
	return &Cart{}
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Add puts one unit of p in the cart and returns the new quantity.
func (c *Cart) Add(p catalog.Product) (int, error) {
	if i := c.index(p.ID); i >= 0 {
		if c.items[i].Quantity >= MaxQuantity {
			return c.items[i].Quantity, fmt.Errorf("%s: %w", p.Title, ErrQuantityLimit)
		}
		c.items[i].Quantity++
		return c.items[i].Quantity, nil
	}
	c.items = append(c.items, Item{Product: p, Quantity: MinQuantity})
	return MinQuantity, nil
}

// SetQuantity changes the quantity of a line. A quantity below
// MinQuantity removes the line; above MaxQuantity is rejected.
func (c *Cart) SetQuantity(productID string, qty int) error {
	i := c.index(productID)
	if i < 0 {
		return fmt.Errorf("cart item %q: %w", productID, common.ErrNotFound)
	}
	if qty > MaxQuantity {
		return fmt.Errorf("%s: %w", c.items[i].Product.Title, ErrQuantityLimit)
	}
	if qty < MinQuantity {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return nil
	}
	c.items[i].Quantity = qty
	return nil
}

// Decrement lowers the quantity by one; at MinQuantity the line is removed.
func (c *Cart) Decrement(productID string) (int, error) {
	i := c.index(productID)
	if i < 0 {
		return 0, fmt.Errorf("cart item %q: %w", productID, common.ErrNotFound)
	}
	qty := c.items[i].Quantity - 1
	return qty, c.SetQuantity(productID, qty)
}

// Remove deletes the line and returns it.
func (c *Cart) Remove(productID string) (Item, error) {
	i := c.index(productID)
	if i < 0 {
		return Item{}, fmt.Errorf("cart item %q: %w", productID, common.ErrNotFound)
	}
	item := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	return item, nil
}

// Clear empties the cart and drops the promo code.
func (c *Cart) Clear() {
	c.items = nil
	c.promo = ""
}

// ApplyPromo validates code (case-insensitive) and returns its discount rate.
func (c *Cart) ApplyPromo(code string) (float64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	rate, ok := promoCodes[code]
	if !ok {
		return 0, fmt.Errorf("%q: %w", code, ErrUnknownPromo)
	}
	c.promo = code
	return rate, nil
}

// Summary computes the totals. Tax applies to the discounted subtotal.
func (c *Cart) Summary() Summary {
	var s Summary
	for _, it := range c.items {
		s.Items += it.Quantity
		s.Subtotal += it.Product.Price * float64(it.Quantity)
	}
	s.Subtotal = roundCents(s.Subtotal)
	if c.promo != "" {
		s.Promo = c.promo
		s.Discount = roundCents(s.Subtotal * promoCodes[c.promo])
	}
	taxable := s.Subtotal - s.Discount
	s.Tax = roundCents(taxable * TaxRate)
	s.Total = roundCents(taxable + s.Tax)
	return s
}

func (c *Cart) index(productID string) int {
	for i, it := range c.items {
		if it.Product.ID == productID {
			return i
		}
	}
	return -1
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
