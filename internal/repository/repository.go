package repository

import (
	"context"
	"errors"

	"github.com/iyhunko/inventory-manager/internal/model"
)

var (
	// ErrProductNotFound is returned when no product matches the requested id.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the operations on the ordered product collection.
type ProductRepository interface {
	// Create assigns a fresh id when the product has none and puts it at the front.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	// Update replaces the product with the same id, keeping its position.
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	// List returns the products matching the query in collection order.
	List(ctx context.Context, query Query) ([]*model.Product, error)
}
