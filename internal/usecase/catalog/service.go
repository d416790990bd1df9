package catalog

import (
	"context"

	dom "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/product"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	return s.repo.Create(ctx, p)
}

func (s *Service) GetByName(ctx context.Context, name string) (*dom.Product, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]*dom.Product, error) {
	return s.repo.List(ctx)
}
