package tools

import (
	"context"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type productListInput struct{}

func registerProducts(mcpServer *mcp.Server, r *runner) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_cdisc_library_product_list",
		Description: "Get the master list of all CDISC Library products and their available versions. " +
			"Use this when the user asks about available CDISC standards, supported versions " +
			"(e.g. \"What versions of SDTM are available?\"), or wants to explore the catalog. " +
			"Returns the product hierarchy with href, title and type for each entry.",
	}, r.productListHandler())
}

func (r *runner) productListHandler() func(context.Context, *mcp.CallToolRequest, productListInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in productListInput) (*mcp.CallToolResult, any, error) {
		return r.call(ctx, "get_cdisc_library_product_list", "/mdr/products", url.Values{"expand": {"false"}}, nil)
	}
}
