// Package main provides the entry point for the catalog MCP proxy server.
// Every tool call is relayed as one HTTP request to the catalog API; the
// proxy holds no product state of its own.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"product-catalog/internal/client"
	"product-catalog/internal/config"
	"product-catalog/internal/mcpserver"
	"product-catalog/internal/tools"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Stdout belongs to the stdio transport; log to stderr.
	logger := config.NewStderrLogger(cfg.Logger)
	logger.Info().
		Str("version", version).
		Str("catalog_url", cfg.Catalog.BaseURL).
		Msg("starting catalog MCP server")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	// Create catalog client and server, register tools
	catalog := client.New(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	srv := mcpserver.New(version, logger)

	deps := &tools.Dependencies{
		Catalog: catalog,
		Logger:  logger,
	}
	tools.RegisterAll(srv.MCPServer(), deps)
	logger.Info().Msg("tools registered, awaiting connections")

	// Run server (blocks until disconnect or context cancelled)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info().Msg("shutdown complete")
	return nil
}
