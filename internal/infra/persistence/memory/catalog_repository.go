package memory

import (
	"context"
	"fmt"
	"sync"

	domproduct "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/product"
)

// CatalogRepository keeps products in memory, keyed by name. Products are
// handed out by reference so stock decrements at checkout are visible to
// every cart holding the item.
type CatalogRepository struct {
	mu       sync.Mutex
	products map[string]*domproduct.Product
	names    []string // insertion order for List
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{products: make(map[string]*domproduct.Product)}
}

func (r *CatalogRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.Name]; ok {
		return nil, fmt.Errorf("%s: %w", p.Name, domproduct.ErrProductExists)
	}
	r.products[p.Name] = p
	r.names = append(r.names, p.Name)
	return p, nil
}

func (r *CatalogRepository) GetByName(ctx context.Context, name string) (*domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domproduct.ErrProductNotFound)
	}
	return p, nil
}

func (r *CatalogRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*domproduct.Product, 0, len(r.names))
	for _, name := range r.names {
		result = append(result, r.products[name])
	}
	return result, nil
}
