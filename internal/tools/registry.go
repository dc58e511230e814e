package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all catalog tools with the MCP server.
// This is called from main after server creation but before Run().
func RegisterAll(server *mcp.Server, deps *Dependencies) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_products",
		Description: "List products from the catalog with optional category and stock filters",
	}, NewListProductsHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_product",
		Description: "Retrieve a single product by its ID",
	}, NewGetProductHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_product",
		Description: "Add a new product to the catalog",
	}, NewCreateProductHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_product",
		Description: "Update an existing product; omitted fields are left unchanged",
	}, NewUpdateProductHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_product",
		Description: "Delete a product from the catalog",
	}, NewDeleteProductHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_categories",
		Description: "Get all unique product categories",
	}, NewGetCategoriesHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_health",
		Description: "Check catalog API and database health",
	}, NewCheckHealthHandler(deps))
}
