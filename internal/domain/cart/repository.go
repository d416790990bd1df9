package cart

import "context"

// Repository hands out one cart per customer name, creating it on first use.
type Repository interface {
	Get(ctx context.Context, customerName string) (*Cart, error)
}
