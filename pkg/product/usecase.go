package product

import (
	"context"
	"strings"
)

// UseCase encapsulates catalog operations.
type UseCase interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func validate(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrValidation("productName is required")
	}
	if p.Quantity < 0 {
		return ErrValidation("quantity must not be negative")
	}
	if p.Price < 0 {
		return ErrValidation("price must not be negative")
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, p Product) (Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := validate(p); err != nil {
		return Product{}, err
	}
	return s.repo.Create(ctx, p)
}

// Update is a full replace of the listed fields keyed by p.ID.
func (s *service) Update(ctx context.Context, p Product) (Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := validate(p); err != nil {
		return Product{}, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
