package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DeleteProductInput defines the input schema for the delete_product tool.
type DeleteProductInput struct {
	ProductID int64 `json:"product_id" jsonschema:"required,ID of the product to delete"`
}

// deleteResult is the success payload for delete_product; the catalog
// responds 204 with no body, so the tool synthesizes a confirmation.
type deleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewDeleteProductHandler creates the delete_product tool handler.
func NewDeleteProductHandler(deps *Dependencies) mcp.ToolHandlerFor[DeleteProductInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeleteProductInput) (
		*mcp.CallToolResult, any, error,
	) {
		if err := deps.Catalog.DeleteProduct(ctx, input.ProductID); err != nil {
			deps.Logger.Error().Err(err).Int64("product_id", input.ProductID).Msg("delete_product failed")
			return relayError(err, "delete product"), nil, nil
		}

		deps.Logger.Debug().Int64("product_id", input.ProductID).Msg("delete_product completed")
		return JSONResult(deleteResult{
			Success: true,
			Message: fmt.Sprintf("Product %d deleted", input.ProductID),
		}), nil, nil
	}
}
