package tools

import (
	"context"

	"product-catalog/internal/client"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListProductsInput defines the input schema for the list_products tool.
type ListProductsInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter products by category (e.g. 'Electronics')"`
	InStock  *bool  `json:"in_stock,omitempty" jsonschema:"Filter by stock availability"`
	Skip     int    `json:"skip,omitempty" jsonschema:"Number of records to skip"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of products to return (default 100)"`
}

// NewListProductsHandler creates the list_products tool handler.
// All filtering and pagination semantics live in the catalog API; the tool
// only relays parameters and results.
func NewListProductsHandler(deps *Dependencies) mcp.ToolHandlerFor[ListProductsInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListProductsInput) (
		*mcp.CallToolResult, any, error,
	) {
		products, err := deps.Catalog.ListProducts(ctx, client.ListOptions{
			Category: input.Category,
			InStock:  input.InStock,
			Skip:     input.Skip,
			Limit:    input.Limit,
		})
		if err != nil {
			deps.Logger.Error().Err(err).Msg("list_products failed")
			return relayError(err, "fetch products"), nil, nil
		}

		deps.Logger.Debug().Int("count", len(products)).Msg("list_products completed")
		return JSONResult(products), nil, nil
	}
}
