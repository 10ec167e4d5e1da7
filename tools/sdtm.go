package tools

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SDTM tools cover both the implementation guide (sdtmig) and the
// underlying model (sdtm) endpoint families.

type sdtmigClassInput struct {
	Version   string `json:"version" jsonschema:"SDTMIG version, e.g. 3-4"`
	ClassName string `json:"className,omitempty" jsonschema:"Observation class name; when set the tool lists the datasets within that class"`
}

type sdtmigDatasetInput struct {
	Version string `json:"version" jsonschema:"SDTMIG version, e.g. 3-4"`
	Dataset string `json:"dataset,omitempty" jsonschema:"Two-character domain code, e.g. AE or DM"`
}

type sdtmClassInput struct {
	Version   string `json:"version" jsonschema:"SDTM model version, e.g. 2-0"`
	ClassName string `json:"className,omitempty" jsonschema:"SDTM model class name"`
}

type sdtmDatasetInput struct {
	Version string `json:"version" jsonschema:"SDTM model version, e.g. 2-0"`
	Dataset string `json:"dataset,omitempty" jsonschema:"SDTM model dataset name, e.g. DM or RELREC"`
}

func registerSDTM(mcpServer *mcp.Server, r *runner) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_sdtmig_class_info",
		Description: fmt.Sprintf(
			"Get SDTM Implementation Guide (SDTMIG) class information, or the datasets within one class. "+
				"Omit className to list all observation classes for the version; set it to list the datasets "+
				"(domains) that class contains. Does not return dataset variables, use get_sdtmig_dataset_info for those. "+
				"Versions: %s. Classes: %s.",
			strings.Join(sdtmigVersions, ", "), strings.Join(sdtmigClasses, ", ")),
	}, r.sdtmigClassHandler())

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_sdtmig_dataset_info",
		Description: fmt.Sprintf(
			"Get detailed metadata (variables, structure) for a specific SDTMIG dataset (domain), "+
				"e.g. the variables in AE or the structure of DM. Omit dataset to list all datasets for the version. "+
				"Versions: %s. Datasets: %s.",
			strings.Join(sdtmigVersions, ", "), strings.Join(sdtmigDatasets, ", ")),
	}, r.sdtmigDatasetHandler())

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_sdtm_model_class_info",
		Description: fmt.Sprintf(
			"Get a Study Data Tabulation Model (SDTM) class definition, or the list of classes when "+
				"className is omitted. Versions: %s. Classes: %s.",
			strings.Join(sdtmVersions, ", "), strings.Join(sdtmClasses, ", ")),
	}, r.sdtmClassHandler())

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_sdtm_model_dataset_info",
		Description: fmt.Sprintf(
			"Get a Study Data Tabulation Model (SDTM) dataset definition (core metadata), or the list of "+
				"datasets when dataset is omitted. Versions: %s. Datasets: %s.",
			strings.Join(sdtmVersions, ", "), strings.Join(sdtmDatasets, ", ")),
	}, r.sdtmDatasetHandler())
}

func (r *runner) sdtmigClassHandler() func(context.Context, *mcp.CallToolRequest, sdtmigClassInput) (*mcp.CallToolResult, any, error) {
	// Listing a class returns its datasets, matching the upstream
	// /classes/{name}/datasets drill-down.
	ep := versionScoped{
		tool:       "get_sdtmig_class_info",
		family:     "sdtmig",
		collection: "classes",
		paramName:  "className",
		allowed:    sdtmigClasses,
		itemSuffix: "/datasets",
		itemQuery:  url.Values{"expand": {"false"}},
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, in sdtmigClassInput) (*mcp.CallToolResult, any, error) {
		return r.versioned(ctx, ep, in.Version, in.ClassName)
	}
}

func (r *runner) sdtmigDatasetHandler() func(context.Context, *mcp.CallToolRequest, sdtmigDatasetInput) (*mcp.CallToolResult, any, error) {
	ep := versionScoped{
		tool:       "get_sdtmig_dataset_info",
		family:     "sdtmig",
		collection: "datasets",
		paramName:  "dataset",
		allowed:    sdtmigDatasets,
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, in sdtmigDatasetInput) (*mcp.CallToolResult, any, error) {
		return r.versioned(ctx, ep, in.Version, in.Dataset)
	}
}

func (r *runner) sdtmClassHandler() func(context.Context, *mcp.CallToolRequest, sdtmClassInput) (*mcp.CallToolResult, any, error) {
	ep := versionScoped{
		tool:       "get_sdtm_model_class_info",
		family:     "sdtm",
		collection: "classes",
		paramName:  "className",
		allowed:    sdtmClasses,
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, in sdtmClassInput) (*mcp.CallToolResult, any, error) {
		return r.versioned(ctx, ep, in.Version, in.ClassName)
	}
}

func (r *runner) sdtmDatasetHandler() func(context.Context, *mcp.CallToolRequest, sdtmDatasetInput) (*mcp.CallToolResult, any, error) {
	ep := versionScoped{
		tool:       "get_sdtm_model_dataset_info",
		family:     "sdtm",
		collection: "datasets",
		paramName:  "dataset",
		allowed:    sdtmDatasets,
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, in sdtmDatasetInput) (*mcp.CallToolResult, any, error) {
		return r.versioned(ctx, ep, in.Version, in.Dataset)
	}
}
