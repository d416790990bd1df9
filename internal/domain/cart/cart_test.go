package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domproduct "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/product"
)

var now = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func TestAdd_InvalidQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int64
	}{
		{name: "zero quantity", quantity: 0},
		{name: "negative quantity", quantity: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			p := domproduct.New("Mobile", 200, 10)

			err := c.Add(p, tt.quantity, now)

			require.ErrorIs(t, err, ErrInvalidQuantity)
			require.True(t, c.IsEmpty())
		})
	}
}

func TestAdd_ExpiredProduct(t *testing.T) {
	c := New()
	p := domproduct.NewExpirable("Cheese", 100, 5, now.AddDate(0, 0, -1))

	err := c.Add(p, 1, now)

	require.ErrorIs(t, err, domproduct.ErrExpired)
	require.Contains(t, err.Error(), "Cheese")
	require.True(t, c.IsEmpty())
}

func TestAdd_InsufficientStock(t *testing.T) {
	c := New()
	p := domproduct.New("Mobile", 200, 3)

	err := c.Add(p, 4, now)

	require.ErrorIs(t, err, domproduct.ErrInsufficientStock)
	require.Contains(t, err.Error(), "Mobile")
	require.True(t, c.IsEmpty())
}

func TestAdd_AccumulatesSameProduct(t *testing.T) {
	c := New()
	p := domproduct.New("Mobile", 200, 10)

	require.NoError(t, c.Add(p, 3, now))
	require.NoError(t, c.Add(p, 2, now))

	entries := c.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, int64(5), entries[0].Quantity)
}

func TestAdd_EachAddBoundedByLiveStockOnly(t *testing.T) {
	// Shelf semantics, not a reservation system: every add is checked
	// against catalog stock alone, so accumulated cart quantity may exceed
	// it. Checkout re-validation catches the overshoot.
	c := New()
	p := domproduct.New("Mobile", 200, 5)

	require.NoError(t, c.Add(p, 4, now))
	require.NoError(t, c.Add(p, 4, now))

	require.Equal(t, int64(8), c.Entries()[0].Quantity)
	require.Equal(t, int64(5), p.Quantity, "adding must not touch stock")
}

func TestAdd_KeepsFirstAddOrder(t *testing.T) {
	c := New()
	cheese := domproduct.New("Cheese", 100, 5)
	tv := domproduct.New("TV", 150, 3)
	mobile := domproduct.New("Mobile", 200, 10)

	require.NoError(t, c.Add(cheese, 1, now))
	require.NoError(t, c.Add(tv, 1, now))
	require.NoError(t, c.Add(mobile, 1, now))
	require.NoError(t, c.Add(cheese, 1, now))

	entries := c.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, "Cheese", entries[0].Product.Name)
	require.Equal(t, "TV", entries[1].Product.Name)
	require.Equal(t, "Mobile", entries[2].Product.Name)
}

func TestClear(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(domproduct.New("Mobile", 200, 10), 2, now))
	require.False(t, c.IsEmpty())

	c.Clear()

	require.True(t, c.IsEmpty())
	require.Empty(t, c.Entries())
}
