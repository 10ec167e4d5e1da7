package tools

import (
	"context"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Controlled Terminology tools: package, codelist and term levels. The
// package id is validated against the published list; codelist and term
// concept codes are forwarded verbatim, so an unknown term surfaces as
// not_found from upstream rather than an empty success.

const ctFamilies = "Package families: sdtmct, sendct, adamct, cdashct, coact (clinical outcome assessments), " +
	"ddfct (data definition framework), define-xmlct, glossaryct, mrctct (plain-language glossary), " +
	"protocolct, qrsct, qs-ftct, tmfct. Package ids combine a family with a release date, e.g. sdtmct-2025-03-28."

type ctPackageInput struct {
	Package string `json:"package" jsonschema:"Controlled Terminology package id, e.g. sdtmct-2025-03-28"`
}

type ctCodelistInput struct {
	Package  string `json:"package" jsonschema:"Controlled Terminology package id, e.g. sdtmct-2025-03-28"`
	Codelist string `json:"codelist" jsonschema:"Codelist concept code, e.g. C66731"`
}

type ctTermInput struct {
	Package  string `json:"package" jsonschema:"Controlled Terminology package id, e.g. sdtmct-2025-03-28"`
	Codelist string `json:"codelist" jsonschema:"Codelist concept code, e.g. C66731"`
	Term     string `json:"term" jsonschema:"Term concept code, e.g. C20197"`
}

func registerCT(mcpServer *mcp.Server, r *runner) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_ct_package_info",
		Description: "Get a Controlled Terminology package from the CDISC Library, reduced to the " +
			"conceptId and submissionValue of each codelist and term. Use get_ct_codelist_info or " +
			"get_ct_term_info for full detail on an entry. " + ctFamilies,
	}, r.ctPackageHandler())

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_ct_codelist_info",
		Description: "Get one codelist, with its terms, from a Controlled Terminology package. " + ctFamilies,
	}, r.ctCodelistHandler())

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_ct_term_info",
		Description: "Get one term from a codelist in a Controlled Terminology package. " + ctFamilies,
	}, r.ctTermHandler())
}

func validCTPackage(pkg string) bool {
	return contains(ctPackages, pkg)
}

func (r *runner) ctPackageHandler() func(context.Context, *mcp.CallToolRequest, ctPackageInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in ctPackageInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Package) == "" {
			return badRequestf("package is required"), nil, nil
		}
		if !validCTPackage(in.Package) {
			return badRequestf("package %q is not a known Controlled Terminology package", in.Package), nil, nil
		}

		path := "/mdr/ct/packages/" + url.PathEscape(in.Package)
		return r.call(ctx, "get_ct_package_info", path, nil, minimizeCTPackage)
	}
}

func (r *runner) ctCodelistHandler() func(context.Context, *mcp.CallToolRequest, ctCodelistInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in ctCodelistInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Package) == "" {
			return badRequestf("package is required"), nil, nil
		}
		if !validCTPackage(in.Package) {
			return badRequestf("package %q is not a known Controlled Terminology package", in.Package), nil, nil
		}
		if strings.TrimSpace(in.Codelist) == "" {
			return badRequestf("codelist is required"), nil, nil
		}

		path := "/mdr/ct/packages/" + url.PathEscape(in.Package) + "/codelists/" + url.PathEscape(in.Codelist)
		return r.call(ctx, "get_ct_codelist_info", path, nil, nil)
	}
}

func (r *runner) ctTermHandler() func(context.Context, *mcp.CallToolRequest, ctTermInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in ctTermInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Package) == "" {
			return badRequestf("package is required"), nil, nil
		}
		if !validCTPackage(in.Package) {
			return badRequestf("package %q is not a known Controlled Terminology package", in.Package), nil, nil
		}
		if strings.TrimSpace(in.Codelist) == "" {
			return badRequestf("codelist is required"), nil, nil
		}
		if strings.TrimSpace(in.Term) == "" {
			return badRequestf("term is required"), nil, nil
		}

		path := "/mdr/ct/packages/" + url.PathEscape(in.Package) +
			"/codelists/" + url.PathEscape(in.Codelist) +
			"/terms/" + url.PathEscape(in.Term)
		return r.call(ctx, "get_ct_term_info", path, nil, nil)
	}
}
