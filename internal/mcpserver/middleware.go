package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// maxParamsLogLen is the maximum length for logged parameters before truncation.
const maxParamsLogLen = 200

// LoggingMiddleware returns middleware that logs all MCP requests with timing.
func LoggingMiddleware(logger zerolog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			start := time.Now()

			result, err := next(ctx, method, req)

			event := logger.Debug()
			if err != nil {
				event = logger.Error().Err(err)
			}

			if params := req.GetParams(); params != nil {
				event = event.Str("params", truncate(fmt.Sprintf("%+v", params), maxParamsLogLen))
			}

			event.
				Str("method", method).
				Dur("duration", time.Since(start)).
				Msg("mcp request")

			return result, err
		}
	}
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
