package tools

import (
	"context"

	"product-catalog/internal/model"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CreateProductInput defines the input schema for the create_product tool.
type CreateProductInput struct {
	Name        string  `json:"name" jsonschema:"required,Product name"`
	Price       float64 `json:"price" jsonschema:"required,Product price (must be positive)"`
	Description *string `json:"description,omitempty" jsonschema:"Product description"`
	Category    string  `json:"category,omitempty" jsonschema:"Product category (default 'General')"`
	InStock     *bool   `json:"in_stock,omitempty" jsonschema:"Stock availability (default true)"`
}

// NewCreateProductHandler creates the create_product tool handler.
// Validation is delegated entirely to the catalog API; a rejected payload
// comes back as a relayed error message.
func NewCreateProductHandler(deps *Dependencies) mcp.ToolHandlerFor[CreateProductInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateProductInput) (
		*mcp.CallToolResult, any, error,
	) {
		product, err := deps.Catalog.CreateProduct(ctx, model.ProductCreate{
			Name:        input.Name,
			Price:       input.Price,
			Description: input.Description,
			Category:    input.Category,
			InStock:     input.InStock,
		})
		if err != nil {
			deps.Logger.Error().Err(err).Str("name", input.Name).Msg("create_product failed")
			return relayError(err, "create product"), nil, nil
		}

		deps.Logger.Debug().Int64("product_id", product.ID).Msg("create_product completed")
		return JSONResult(product), nil, nil
	}
}
