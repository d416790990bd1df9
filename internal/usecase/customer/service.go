package customer

import (
	"context"

	dom "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/customer"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, c *dom.Customer) (*dom.Customer, error) {
	return s.repo.Create(ctx, c)
}

func (s *Service) GetByName(ctx context.Context, name string) (*dom.Customer, error) {
	return s.repo.GetByName(ctx, name)
}
