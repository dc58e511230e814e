package tools

import (
	"encoding/json"
	"fmt"

	"product-catalog/internal/client"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrorResult creates a tool error result carrying the canonical
// {"error": <message>} payload. Returns IsError=true so the calling agent can
// see the failure and self-correct; expected failures never surface as
// protocol-level errors.
func ErrorResult(message string) *mcp.CallToolResult {
	payload, _ := json.Marshal(map[string]string{"error": message})
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(payload)},
		},
		IsError: true,
	}
}

// JSONResult creates a success result with the value rendered as JSON text.
func JSONResult(v any) *mcp.CallToolResult {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrorResult(fmt.Sprintf("Failed to encode response: %v", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(encoded)},
		},
	}
}

// relayError classifies a catalog client error into the canonical error
// payload: a relayed Not-Found keeps its identifier-bearing message, any
// other status fault names the failed action, and transport faults
// (timeout, refused connection, undecodable body) collapse into one
// connection-error category.
func relayError(err error, action string) *mcp.CallToolResult {
	switch e := err.(type) {
	case *client.NotFoundError:
		return ErrorResult(e.Error())
	case *client.StatusError:
		return ErrorResult(fmt.Sprintf("Failed to %s: %v", action, e))
	default:
		return ErrorResult(fmt.Sprintf("Connection error: %v", err))
	}
}
