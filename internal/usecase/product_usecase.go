package usecase

import (
	"context"

	"stockroom/internal/domain/entity"
)

// CreateProductInput defines the data required to create a product.
// Stock is deliberately untyped: the wire contract distinguishes a missing
// stock from a non-numeric one, which a plain int field cannot express.
type CreateProductInput struct {
	Name  string `json:"name"`
	Stock any    `json:"stock"`
}

// DeleteProductInput identifies the product to remove by its natural key.
type DeleteProductInput struct {
	Name string `json:"name"`
}

// ProductOutput returns the product affected by an operation.
type ProductOutput struct {
	Product *entity.Product
}

// ProductUsecase defines the contract for product inventory operations.
type ProductUsecase interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, input *CreateProductInput) (*ProductOutput, error)
	Delete(ctx context.Context, input *DeleteProductInput) (*ProductOutput, error)
}
