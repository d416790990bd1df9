package product

import "time"

// Product is a catalog entry. Expiry and Weight are optional capabilities:
// a product is perishable iff Expiry is set and shippable iff Weight is set.
// Any combination of the two is valid.
type Product struct {
	Name     string
	Price    float64
	Quantity int64
	Expiry   *time.Time
	Weight   *float64 // kg per unit
}

func New(name string, price float64, quantity int64) *Product {
	return &Product{Name: name, Price: price, Quantity: quantity}
}

func NewExpirable(name string, price float64, quantity int64, expiry time.Time) *Product {
	return &Product{Name: name, Price: price, Quantity: quantity, Expiry: &expiry}
}

func NewShippable(name string, price float64, quantity int64, weight float64) *Product {
	return &Product{Name: name, Price: price, Quantity: quantity, Weight: &weight}
}

func NewExpirableShippable(name string, price float64, quantity int64, expiry time.Time, weight float64) *Product {
	return &Product{Name: name, Price: price, Quantity: quantity, Expiry: &expiry, Weight: &weight}
}

// IsExpired reports whether the product's expiry lies before now. Products
// without the expiry capability never expire. The evaluation time is passed
// in so callers control the clock.
func (p *Product) IsExpired(now time.Time) bool {
	return p.Expiry != nil && p.Expiry.Before(now)
}

// IsShippable reports whether the product carries the shipping capability.
func (p *Product) IsShippable() bool {
	return p.Weight != nil
}

// ShippingWeight returns the per-unit weight in kilograms, or zero for
// products without the shipping capability.
func (p *Product) ShippingWeight() float64 {
	if p.Weight == nil {
		return 0
	}
	return *p.Weight
}

// ReduceQuantity decrements stock by n. Callers must have verified
// n <= Quantity; checkout is the only mutator of stock.
func (p *Product) ReduceQuantity(n int64) {
	p.Quantity -= n
}
