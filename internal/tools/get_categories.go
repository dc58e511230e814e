package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetCategoriesInput defines the input schema for the get_categories tool.
// The tool takes no parameters.
type GetCategoriesInput struct{}

// NewGetCategoriesHandler creates the get_categories tool handler.
func NewGetCategoriesHandler(deps *Dependencies) mcp.ToolHandlerFor[GetCategoriesInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetCategoriesInput) (
		*mcp.CallToolResult, any, error,
	) {
		categories, err := deps.Catalog.Categories(ctx)
		if err != nil {
			deps.Logger.Error().Err(err).Msg("get_categories failed")
			return relayError(err, "fetch categories"), nil, nil
		}

		return JSONResult(categories), nil, nil
	}
}
