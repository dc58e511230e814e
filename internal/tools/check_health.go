package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CheckHealthInput defines the input schema for the check_health tool.
// The tool takes no parameters.
type CheckHealthInput struct{}

// NewCheckHealthHandler creates the check_health tool handler. An unhealthy
// catalog surfaces as an error payload carrying the underlying cause.
func NewCheckHealthHandler(deps *Dependencies) mcp.ToolHandlerFor[CheckHealthInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CheckHealthInput) (
		*mcp.CallToolResult, any, error,
	) {
		status, err := deps.Catalog.Health(ctx)
		if err != nil {
			deps.Logger.Error().Err(err).Msg("check_health failed")
			return relayError(err, "check health"), nil, nil
		}

		return JSONResult(status), nil, nil
	}
}
