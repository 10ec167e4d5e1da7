package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type sendigClassInput struct {
	Version   string `json:"version" jsonschema:"SENDIG version, e.g. 3-1"`
	ClassName string `json:"className,omitempty" jsonschema:"SENDIG class name"`
}

type sendigDatasetInput struct {
	Version string `json:"version" jsonschema:"SENDIG version, e.g. 3-1"`
	Dataset string `json:"dataset,omitempty" jsonschema:"SENDIG domain code, e.g. BW or LB"`
}

func registerSEND(mcpServer *mcp.Server, r *runner) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_sendig_class_info",
		Description: fmt.Sprintf(
			"Get a SEND Implementation Guide (SENDIG) class definition, or the list of classes when "+
				"className is omitted. Versions: %s. Classes: %s.",
			strings.Join(sendigVersions, ", "), strings.Join(sendigClasses, ", ")),
	}, r.sendigClassHandler())

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_sendig_dataset_info",
		Description: fmt.Sprintf(
			"Get detailed metadata (variables, structure) for a SEND Implementation Guide (SENDIG) dataset "+
				"(domain), or the list of datasets when dataset is omitted. Versions: %s. Datasets: %s.",
			strings.Join(sendigVersions, ", "), strings.Join(sendigDatasets, ", ")),
	}, r.sendigDatasetHandler())
}

func (r *runner) sendigClassHandler() func(context.Context, *mcp.CallToolRequest, sendigClassInput) (*mcp.CallToolResult, any, error) {
	ep := versionScoped{
		tool:       "get_sendig_class_info",
		family:     "sendig",
		collection: "classes",
		paramName:  "className",
		allowed:    sendigClasses,
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, in sendigClassInput) (*mcp.CallToolResult, any, error) {
		return r.versioned(ctx, ep, in.Version, in.ClassName)
	}
}

func (r *runner) sendigDatasetHandler() func(context.Context, *mcp.CallToolRequest, sendigDatasetInput) (*mcp.CallToolResult, any, error) {
	ep := versionScoped{
		tool:       "get_sendig_dataset_info",
		family:     "sendig",
		collection: "datasets",
		paramName:  "dataset",
		allowed:    sendigDatasets,
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, in sendigDatasetInput) (*mcp.CallToolResult, any, error) {
		return r.versioned(ctx, ep, in.Version, in.Dataset)
	}
}
