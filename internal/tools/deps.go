// Package tools provides the catalog MCP tool handlers and registration.
package tools

import (
	"product-catalog/internal/client"

	"github.com/rs/zerolog"
)

// Dependencies holds shared services for tool handlers.
// Passed to handler factories via closure capture.
type Dependencies struct {
	Catalog *client.Client
	Logger  zerolog.Logger
}
