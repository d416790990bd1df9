package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	dom "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/product"
)

type mockRepository struct {
	products map[string]*dom.Product
	order    []string
}

func newMockRepository() *mockRepository {
	return &mockRepository{products: make(map[string]*dom.Product)}
}

func (m *mockRepository) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	if _, ok := m.products[p.Name]; ok {
		return nil, dom.ErrProductExists
	}
	m.products[p.Name] = p
	m.order = append(m.order, p.Name)
	return p, nil
}

func (m *mockRepository) GetByName(ctx context.Context, name string) (*dom.Product, error) {
	if p, ok := m.products[name]; ok {
		return p, nil
	}
	return nil, dom.ErrProductNotFound
}

func (m *mockRepository) List(ctx context.Context) ([]*dom.Product, error) {
	result := make([]*dom.Product, 0, len(m.order))
	for _, name := range m.order {
		result = append(result, m.products[name])
	}
	return result, nil
}

func TestCreateAndGet(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, dom.New("Mobile", 200, 10))
	require.NoError(t, err)

	got, err := svc.GetByName(ctx, "Mobile")
	require.NoError(t, err)
	require.Same(t, created, got)
}

func TestCreate_Duplicate(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, dom.New("Mobile", 200, 10))
	require.NoError(t, err)

	_, err = svc.Create(ctx, dom.New("Mobile", 100, 1))
	require.ErrorIs(t, err, dom.ErrProductExists)
}

func TestList(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, dom.New("Mobile", 200, 10))
	require.NoError(t, err)
	_, err = svc.Create(ctx, dom.NewShippable("TV", 150, 3, 7.0))
	require.NoError(t, err)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "Mobile", products[0].Name)
	require.Equal(t, "TV", products[1].Name)
}
