package repository

import (
	"context"

	"product-catalog/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products matching the filter, ordered by id ascending,
	// with skip/limit applied over the filtered result.
	List(ctx context.Context, filter model.ListFilter) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil) when
	// no product has that ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a new product and returns the stored record including
	// the server-assigned ID and timestamps.
	Create(ctx context.Context, input *model.ProductCreate) (*model.Product, error)

	// Update applies the present fields of the patch in a single statement,
	// bumps updated_at, and returns the full updated record. Returns
	// (nil, nil) when no product has that ID.
	Update(ctx context.Context, id int64, patch *model.ProductUpdate) (*model.Product, error)

	// Delete removes a product permanently. Returns false when no product
	// had that ID.
	Delete(ctx context.Context, id int64) (bool, error)

	// Categories retrieves the distinct category values across all products.
	Categories(ctx context.Context) ([]string, error)

	// Ping issues a trivial liveness probe against the database.
	Ping(ctx context.Context) error
}
