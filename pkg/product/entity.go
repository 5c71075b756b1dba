package product

import (
	"context"
	"errors"
)

// Product is a catalog record. The id is assigned by the store on creation.
// JSON tags follow the public wire format.
type Product struct {
	ID          int64   `json:"productId"`
	Name        string  `json:"productName"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// ErrNotFound is returned when no product matches the requested id,
// including updates and deletes that affect zero rows.
var ErrNotFound = errors.New("product not found")

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository abstracts product persistence.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id int64) error
}
