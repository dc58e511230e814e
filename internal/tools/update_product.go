package tools

import (
	"context"

	"product-catalog/internal/model"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// UpdateProductInput defines the input schema for the update_product tool.
// Every field except product_id is optional; omitted fields are left
// untouched by the catalog.
type UpdateProductInput struct {
	ProductID   int64    `json:"product_id" jsonschema:"required,ID of the product to update"`
	Name        *string  `json:"name,omitempty" jsonschema:"New product name"`
	Price       *float64 `json:"price,omitempty" jsonschema:"New product price"`
	Description *string  `json:"description,omitempty" jsonschema:"New product description"`
	Category    *string  `json:"category,omitempty" jsonschema:"New product category"`
	InStock     *bool    `json:"in_stock,omitempty" jsonschema:"New stock status"`
}

// NewUpdateProductHandler creates the update_product tool handler.
func NewUpdateProductHandler(deps *Dependencies) mcp.ToolHandlerFor[UpdateProductInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input UpdateProductInput) (
		*mcp.CallToolResult, any, error,
	) {
		product, err := deps.Catalog.UpdateProduct(ctx, input.ProductID, model.ProductUpdate{
			Name:        input.Name,
			Price:       input.Price,
			Description: input.Description,
			Category:    input.Category,
			InStock:     input.InStock,
		})
		if err != nil {
			deps.Logger.Error().Err(err).Int64("product_id", input.ProductID).Msg("update_product failed")
			return relayError(err, "update product"), nil, nil
		}

		deps.Logger.Debug().Int64("product_id", product.ID).Msg("update_product completed")
		return JSONResult(product), nil, nil
	}
}
