package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindAll retrieves every product, in store-defined order.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByName retrieves a single product by its natural key.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// Create persists a new product. The store enforces name uniqueness.
	Create(ctx context.Context, product *entity.Product) error

	// DeleteByName removes the product with the given name. Returns
	// ErrProductNotFound when no row was deleted.
	DeleteByName(ctx context.Context, name string) error
}
