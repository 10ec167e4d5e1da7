package tools

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type adamProductInput struct {
	Product string `json:"product" jsonschema:"ADaM product id, e.g. adamig-1-3"`
}

type adamDatastructureInput struct {
	Product       string `json:"product" jsonschema:"ADaM product id, e.g. adamig-1-3"`
	Datastructure string `json:"datastructure" jsonschema:"Data structure name defined by the product, e.g. ADSL or BDS"`
}

func registerADaM(mcpServer *mcp.Server, r *runner) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_adam_product_info",
		Description: fmt.Sprintf(
			"Get an ADaM product and its data structures from the CDISC Library. Analysis variables are "+
				"returned empty at this level; use get_adam_datastructure_info for variable detail. "+
				"Products: %s.",
			strings.Join(adamProducts, ", ")),
	}, r.adamProductHandler())

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_adam_datastructure_info",
		Description: "Get one ADaM data structure, including its analysis variables, from the CDISC Library. " +
			"Valid product/datastructure pairs: " + adamCombinations() + ".",
	}, r.adamDatastructureHandler())
}

// adamCombinations renders the product/datastructure table for the tool
// description, in stable order.
func adamCombinations() string {
	products := make([]string, 0, len(adamDatastructures))
	for p := range adamDatastructures {
		products = append(products, p)
	}
	sort.Strings(products)

	parts := make([]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, fmt.Sprintf("%s (%s)", p, strings.Join(adamDatastructures[p], ", ")))
	}
	return strings.Join(parts, "; ")
}

func (r *runner) adamProductHandler() func(context.Context, *mcp.CallToolRequest, adamProductInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in adamProductInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Product) == "" {
			return badRequestf("product is required"), nil, nil
		}
		if !contains(adamProducts, in.Product) {
			return badRequestf("invalid product %q, valid values: %s", in.Product, strings.Join(adamProducts, ", ")), nil, nil
		}

		path := "/mdr/adam/" + url.PathEscape(in.Product)
		return r.call(ctx, "get_adam_product_info", path, nil, clearAnalysisVariables)
	}
}

func (r *runner) adamDatastructureHandler() func(context.Context, *mcp.CallToolRequest, adamDatastructureInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in adamDatastructureInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Product) == "" {
			return badRequestf("product is required"), nil, nil
		}
		if strings.TrimSpace(in.Datastructure) == "" {
			return badRequestf("datastructure is required"), nil, nil
		}

		valid, ok := adamDatastructures[in.Product]
		if !ok {
			return badRequestf("invalid product %q, valid values: %s", in.Product, adamCombinations()), nil, nil
		}
		if !contains(valid, in.Datastructure) {
			return badRequestf("invalid datastructure %q for product %q, valid values: %s",
				in.Datastructure, in.Product, strings.Join(valid, ", ")), nil, nil
		}

		path := "/mdr/adam/" + url.PathEscape(in.Product) + "/datastructures/" + url.PathEscape(in.Datastructure)
		return r.call(ctx, "get_adam_datastructure_info", path, nil, trimAnalysisVariableLinks)
	}
}
