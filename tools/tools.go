package tools

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/clindata/cdisc-library-mcp/client"
)

type Options struct {
	// MaxOutputSize caps the serialized tool output in bytes.
	MaxOutputSize int
	Logger        *slog.Logger
}

const defaultMaxOutputSize = 130000

// runner is shared by every tool handler: one client, one output cap.
type runner struct {
	client    *client.Client
	maxOutput int
	logger    *slog.Logger
}

// Register adds the full CDISC Library tool catalog to the MCP server. The
// catalog is fixed: every tool maps onto exactly one documented endpoint
// family, there is no dynamic discovery.
func Register(mcpServer *mcp.Server, httpClient *client.Client, opts Options) {
	maxOutput := opts.MaxOutputSize
	if maxOutput <= 0 {
		maxOutput = defaultMaxOutputSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := &runner{client: httpClient, maxOutput: maxOutput, logger: logger}

	registerProducts(mcpServer, r)
	registerSDTM(mcpServer, r)
	registerSEND(mcpServer, r)
	registerCDASH(mcpServer, r)
	registerADaM(mcpServer, r)
	registerQRS(mcpServer, r)
	registerCT(mcpServer, r)
}

// call performs the single upstream request a tool maps to and shapes the
// outcome into a tool result. Per-call failures become IsError results,
// never Go errors, so one bad call can never take the transport down.
func (r *runner) call(ctx context.Context, tool, path string, query url.Values, reshape func(any) any) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	value, err := r.client.GetJSON(ctx, path, query)
	if err != nil {
		r.logger.Warn("tool call failed", "tool", tool, "path", path, "error", err)
		return errorResult(err.Error()), nil, nil
	}

	if reshape != nil {
		value = reshape(value)
	}

	text, err := marshalCapped(value, r.maxOutput)
	if err != nil {
		r.logger.Warn("tool call failed", "tool", tool, "path", path, "error", err)
		return errorResult(fmt.Sprintf("%s: re-encoding response: %s", client.KindUpstream, err)), nil, nil
	}

	r.logger.Debug("tool call completed", "tool", tool, "path", path, "bytes", len(text), "duration", time.Since(start))
	return textResult(text), nil, nil
}

// versionScoped describes one version-scoped endpoint family, the shape
// shared by the SDTM, SEND and CDASH tools: a collection under
// /mdr/{family}/{version}/ plus an optional item drill-down.
type versionScoped struct {
	tool       string
	family     string // URL segment under /mdr, e.g. "sdtmig"
	collection string // "classes", "datasets", "domains" or "scenarios"
	paramName  string // input field named in diagnostics, e.g. "className"
	allowed    []string
	itemSuffix string // appended after the item, e.g. "/datasets"
	itemQuery  url.Values
}

func (r *runner) versioned(ctx context.Context, ep versionScoped, version, item string) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(version) == "" {
		return badRequestf("version is required"), nil, nil
	}

	path := fmt.Sprintf("/mdr/%s/%s/%s", ep.family, url.PathEscape(version), ep.collection)
	var query url.Values

	if item != "" {
		if ep.allowed != nil && !contains(ep.allowed, item) {
			return badRequestf("invalid %s %q, valid values: %s", ep.paramName, item, strings.Join(ep.allowed, ", ")), nil, nil
		}
		path += "/" + url.PathEscape(item) + ep.itemSuffix
		query = ep.itemQuery
	}

	return r.call(ctx, ep.tool, path, query, nil)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// badRequestf reports a caller-side parameter failure. No upstream request
// has been made when this is returned.
func badRequestf(format string, args ...any) *mcp.CallToolResult {
	return errorResult(string(client.KindBadRequest) + ": " + fmt.Sprintf(format, args...))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
