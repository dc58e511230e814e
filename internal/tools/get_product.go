package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetProductInput defines the input schema for the get_product tool.
type GetProductInput struct {
	ProductID int64 `json:"product_id" jsonschema:"required,The unique identifier of the product"`
}

// NewGetProductHandler creates the get_product tool handler.
func NewGetProductHandler(deps *Dependencies) mcp.ToolHandlerFor[GetProductInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetProductInput) (
		*mcp.CallToolResult, any, error,
	) {
		product, err := deps.Catalog.GetProduct(ctx, input.ProductID)
		if err != nil {
			deps.Logger.Error().Err(err).Int64("product_id", input.ProductID).Msg("get_product failed")
			return relayError(err, "fetch product"), nil, nil
		}

		return JSONResult(product), nil, nil
	}
}
