package memory

import (
	"context"
	"sync"

	domcart "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/cart"
)

// CartRepository hands out one cart per customer name, created lazily.
// The same *Cart is returned on every call, so add and checkout operate on
// shared state.
type CartRepository struct {
	mu    sync.Mutex
	carts map[string]*domcart.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*domcart.Cart)}
}

func (r *CartRepository) Get(ctx context.Context, customerName string) (*domcart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[customerName]
	if !ok {
		c = domcart.New()
		r.carts[customerName] = c
	}
	return c, nil
}
