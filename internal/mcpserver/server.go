// Package mcpserver provides the MCP server wrapper with lifecycle management.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// Server wraps the MCP server with logging and lifecycle management.
type Server struct {
	mcp    *mcp.Server
	logger zerolog.Logger
}

// New creates a new MCP server with the given version and logger.
func New(version string, logger zerolog.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    "product-catalog",
		Version: version,
	}

	s := &Server{
		mcp:    mcp.NewServer(impl, nil),
		logger: logger,
	}
	s.mcp.AddReceivingMiddleware(LoggingMiddleware(logger))

	return s
}

// Run starts the server on stdio transport and blocks until disconnect or
// context cancellation.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().Str("transport", "stdio").Msg("starting MCP server")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server for tool registration.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}
