package checkout

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	domcart "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/cart"
	domcustomer "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/customer"
	domproduct "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/product"
	"github.com/tahaaa22/Fawry--e-commerce-system/internal/usecase/shipping"
)

type CartRepository interface {
	Get(ctx context.Context, customerName string) (*domcart.Cart, error)
}

type CustomerRepository interface {
	GetByName(ctx context.Context, name string) (*domcustomer.Customer, error)
}

type Service struct {
	customerRepo CustomerRepository
	cartRepo     CartRepository
	now          func() time.Time
}

// NewService wires the checkout engine. now is the clock used for expiry
// re-validation; pass nil to use time.Now.
func NewService(customerRepo CustomerRepository, cartRepo CartRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		customerRepo: customerRepo,
		cartRepo:     cartRepo,
		now:          now,
	}
}

// Checkout settles the named customer's cart.
func (s *Service) Checkout(ctx context.Context, customerName string) (*Receipt, error) {
	cust, err := s.customerRepo.GetByName(ctx, customerName)
	if err != nil {
		return nil, err
	}
	crt, err := s.cartRepo.Get(ctx, customerName)
	if err != nil {
		return nil, err
	}
	return s.Settle(cust, crt)
}

// Settle runs the checkout sequence: re-validate every entry against live
// stock and the current clock, price the order, check affordability, then
// debit the customer, decrement stock and clear the cart. Any failure is
// terminal and leaves cart, stock and balance exactly as they were.
func (s *Service) Settle(cust *domcustomer.Customer, crt *domcart.Cart) (*Receipt, error) {
	if crt.IsEmpty() {
		return nil, domcart.ErrEmptyCart
	}

	now := s.now()
	var subtotal float64
	var units []shipping.Unit
	counts := make(map[string]int64)
	for _, e := range crt.Entries() {
		p := e.Product
		if p.IsExpired(now) {
			return nil, fmt.Errorf("%s: %w", p.Name, domproduct.ErrExpired)
		}
		if e.Quantity > p.Quantity {
			return nil, fmt.Errorf("%s: %w", p.Name, domproduct.ErrInsufficientStock)
		}
		subtotal += p.Price * float64(e.Quantity)
		if p.IsShippable() {
			for i := int64(0); i < e.Quantity; i++ {
				units = append(units, shipping.Unit{Name: p.Name, Weight: p.ShippingWeight()})
			}
			counts[p.Name] = e.Quantity
		}
	}

	var totalWeight float64
	for _, u := range units {
		totalWeight += u.Weight
	}
	// 3 currency units per started 100g of package weight.
	shippingCost := math.Ceil(totalWeight*10) * 3
	total := subtotal + shippingCost

	if cust.Balance < total {
		return nil, fmt.Errorf("%s: %w", cust.Name, domcustomer.ErrInsufficientBalance)
	}

	receipt := &Receipt{
		OrderID:  uuid.New(),
		Subtotal: subtotal,
		Shipping: shippingCost,
		Total:    total,
	}
	if len(units) > 0 {
		receipt.Notice = shipping.BuildNotice(units, counts)
	}
	for _, e := range crt.Entries() {
		receipt.Lines = append(receipt.Lines, Line{
			Name:      e.Product.Name,
			Quantity:  e.Quantity,
			LineTotal: e.Product.Price * float64(e.Quantity),
		})
	}

	// Nothing above this point mutates state; debit, stock decrement and
	// cart clearing happen together or not at all.
	cust.Deduct(total)
	receipt.BalanceAfter = cust.Balance
	for _, e := range crt.Entries() {
		e.Product.ReduceQuantity(e.Quantity)
	}
	crt.Clear()

	return receipt, nil
}
