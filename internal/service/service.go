package service

import (
	"context"

	"product-catalog/internal/model"
)

// ProductService defines operations for product catalogue management.
type ProductService interface {
	// List retrieves a page of products matching the filter.
	List(ctx context.Context, filter model.ListFilter) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create validates and persists a new product.
	Create(ctx context.Context, input *model.ProductCreate) (*model.Product, error)

	// Update validates and applies a sparse patch to an existing product.
	Update(ctx context.Context, id int64, patch *model.ProductUpdate) (*model.Product, error)

	// Delete removes a product permanently.
	Delete(ctx context.Context, id int64) error

	// Categories retrieves the distinct category values.
	Categories(ctx context.Context) ([]string, error)

	// Health probes the persistence layer.
	Health(ctx context.Context) (*model.HealthStatus, error)
}
