package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CDASH tools cover the implementation guide (cdashig) and the CDASH model
// (cdash) endpoint families, including the CDASHIG data-collection
// scenarios.

type cdashigClassInput struct {
	Version   string `json:"version" jsonschema:"CDASHIG version, e.g. 2-3"`
	ClassName string `json:"className,omitempty" jsonschema:"CDASHIG class name; when set the tool lists the domains within that class"`
}

type cdashigDomainInput struct {
	Version string `json:"version" jsonschema:"CDASHIG version, e.g. 2-3"`
	Domain  string `json:"domain,omitempty" jsonschema:"CDASHIG domain code, e.g. AE or VS"`
}

type cdashigScenarioInput struct {
	Version  string `json:"version" jsonschema:"CDASHIG version, e.g. 2-3"`
	Scenario string `json:"scenario,omitempty" jsonschema:"CDASHIG scenario name, e.g. DS or SAE"`
}

type cdashClassInput struct {
	Version   string `json:"version" jsonschema:"CDASH model version, e.g. 1-3"`
	ClassName string `json:"className,omitempty" jsonschema:"CDASH model class name"`
}

type cdashDomainInput struct {
	Version string `json:"version" jsonschema:"CDASH model version, e.g. 1-3"`
	Domain  string `json:"domain,omitempty" jsonschema:"CDASH model domain code"`
}

func registerCDASH(mcpServer *mcp.Server, r *runner) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_cdashig_class_info",
		Description: fmt.Sprintf(
			"Get CDASH Implementation Guide (CDASHIG) class information, or the domains within one class. "+
				"Omit className to list all classes for the version. Versions: %s. Classes: %s.",
			strings.Join(cdashigVersions, ", "), strings.Join(cdashigClasses, ", ")),
	}, r.cdashigClassHandler())

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_cdashig_domain_info",
		Description: fmt.Sprintf(
			"Get a CDASH Implementation Guide (CDASHIG) domain definition, or the list of domains when "+
				"domain is omitted. Versions: %s. Domains: %s.",
			strings.Join(cdashigVersions, ", "), strings.Join(cdashigDomains, ", ")),
	}, r.cdashigDomainHandler())

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_cdashig_scenario_info",
		Description: fmt.Sprintf(
			"Get a CDASH Implementation Guide (CDASHIG) data-collection scenario, or the list of scenarios "+
				"when scenario is omitted. Versions: %s.",
			strings.Join(cdashigVersions, ", ")),
	}, r.cdashigScenarioHandler())

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_cdash_model_class_info",
		Description: fmt.Sprintf(
			"Get a CDASH model class definition, or the list of classes when className is omitted. "+
				"Versions: %s. Classes: %s.",
			strings.Join(cdashVersions, ", "), strings.Join(cdashClasses, ", ")),
	}, r.cdashClassHandler())

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_cdash_model_domain_info",
		Description: fmt.Sprintf(
			"Get a CDASH model domain definition, or the list of domains when domain is omitted. "+
				"Versions: %s. Domains: %s.",
			strings.Join(cdashVersions, ", "), strings.Join(cdashDomains, ", ")),
	}, r.cdashDomainHandler())
}

func (r *runner) cdashigClassHandler() func(context.Context, *mcp.CallToolRequest, cdashigClassInput) (*mcp.CallToolResult, any, error) {
	// Listing a CDASHIG class drills into its domains, matching the
	// upstream /classes/{name}/domains path.
	ep := versionScoped{
		tool:       "get_cdashig_class_info",
		family:     "cdashig",
		collection: "classes",
		paramName:  "className",
		allowed:    cdashigClasses,
		itemSuffix: "/domains",
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, in cdashigClassInput) (*mcp.CallToolResult, any, error) {
		return r.versioned(ctx, ep, in.Version, in.ClassName)
	}
}

func (r *runner) cdashigDomainHandler() func(context.Context, *mcp.CallToolRequest, cdashigDomainInput) (*mcp.CallToolResult, any, error) {
	ep := versionScoped{
		tool:       "get_cdashig_domain_info",
		family:     "cdashig",
		collection: "domains",
		paramName:  "domain",
		allowed:    cdashigDomains,
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, in cdashigDomainInput) (*mcp.CallToolResult, any, error) {
		return r.versioned(ctx, ep, in.Version, in.Domain)
	}
}

func (r *runner) cdashigScenarioHandler() func(context.Context, *mcp.CallToolRequest, cdashigScenarioInput) (*mcp.CallToolResult, any, error) {
	// Scenario names are not enumerated upstream, so they pass through
	// verbatim; an unknown one comes back as not_found.
	ep := versionScoped{
		tool:       "get_cdashig_scenario_info",
		family:     "cdashig",
		collection: "scenarios",
		paramName:  "scenario",
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, in cdashigScenarioInput) (*mcp.CallToolResult, any, error) {
		return r.versioned(ctx, ep, in.Version, in.Scenario)
	}
}

func (r *runner) cdashClassHandler() func(context.Context, *mcp.CallToolRequest, cdashClassInput) (*mcp.CallToolResult, any, error) {
	ep := versionScoped{
		tool:       "get_cdash_model_class_info",
		family:     "cdash",
		collection: "classes",
		paramName:  "className",
		allowed:    cdashClasses,
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, in cdashClassInput) (*mcp.CallToolResult, any, error) {
		return r.versioned(ctx, ep, in.Version, in.ClassName)
	}
}

func (r *runner) cdashDomainHandler() func(context.Context, *mcp.CallToolRequest, cdashDomainInput) (*mcp.CallToolResult, any, error) {
	ep := versionScoped{
		tool:       "get_cdash_model_domain_info",
		family:     "cdash",
		collection: "domains",
		paramName:  "domain",
		allowed:    cdashDomains,
	}
	return func(ctx context.Context, req *mcp.CallToolRequest, in cdashDomainInput) (*mcp.CallToolResult, any, error) {
		return r.versioned(ctx, ep, in.Version, in.Domain)
	}
}
