package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) (*Customer, error)
	GetByName(ctx context.Context, name string) (*Customer, error)
}
