package cart

import (
	"context"
	"time"

	domcart "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/cart"
	domproduct "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/product"
)

type CartRepository interface {
	Get(ctx context.Context, customerName string) (*domcart.Cart, error)
}

type ProductRepository interface {
	GetByName(ctx context.Context, name string) (*domproduct.Product, error)
}

type Service struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	now         func() time.Time
}

// NewService wires the cart usecase. now is the clock used for add-time
// expiry checks; pass nil to use time.Now.
func NewService(cartRepo CartRepository, productRepo ProductRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		now:         now,
	}
}

func (s *Service) AddItem(ctx context.Context, customerName, productName string, quantity int64) error {
	p, err := s.productRepo.GetByName(ctx, productName)
	if err != nil {
		return err
	}
	crt, err := s.cartRepo.Get(ctx, customerName)
	if err != nil {
		return err
	}
	return crt.Add(p, quantity, s.now())
}

func (s *Service) GetCart(ctx context.Context, customerName string) (*domcart.Cart, error) {
	return s.cartRepo.Get(ctx, customerName)
}
