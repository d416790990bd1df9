package cart

import (
	"fmt"
	"time"

	domproduct "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/product"
)

// Entry pairs a catalog product with the quantity requested so far.
type Entry struct {
	Product  *domproduct.Product
	Quantity int64
}

// Cart accumulates requested quantities per product, keeping entries in
// first-add order. It holds the catalog's own product values, so stock
// changes between add and checkout are visible at validation time.
type Cart struct {
	entries []*Entry
}

func New() *Cart {
	return &Cart{}
}

// Add validates quantity, expiry and live stock, then accumulates the entry.
// Each add is bounded by the catalog's current stock alone, not by what the
// cart already holds; stock is only consumed at checkout.
func (c *Cart) Add(p *domproduct.Product, quantity int64, now time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if p.IsExpired(now) {
		return fmt.Errorf("%s: %w", p.Name, domproduct.ErrExpired)
	}
	if quantity > p.Quantity {
		return fmt.Errorf("%s: %w", p.Name, domproduct.ErrInsufficientStock)
	}

	for _, e := range c.entries {
		if e.Product == p {
			e.Quantity += quantity
			return nil
		}
	}
	c.entries = append(c.entries, &Entry{Product: p, Quantity: quantity})
	return nil
}

func (c *Cart) Entries() []*Entry {
	return c.entries
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

func (c *Cart) Clear() {
	c.entries = nil
}
