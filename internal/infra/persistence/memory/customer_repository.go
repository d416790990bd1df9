package memory

import (
	"context"
	"fmt"
	"sync"

	domcustomer "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/customer"
)

type CustomerRepository struct {
	mu        sync.Mutex
	customers map[string]*domcustomer.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: make(map[string]*domcustomer.Customer)}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domcustomer.Customer) (*domcustomer.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[c.Name]; ok {
		return nil, fmt.Errorf("%s: %w", c.Name, domcustomer.ErrCustomerExists)
	}
	r.customers[c.Name] = c
	return c, nil
}

func (r *CustomerRepository) GetByName(ctx context.Context, name string) (*domcustomer.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domcustomer.ErrCustomerNotFound)
	}
	return c, nil
}
