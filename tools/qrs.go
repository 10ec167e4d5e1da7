package tools

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type qrsInput struct {
	Instrument string `json:"instrument" jsonschema:"QRS instrument short name, e.g. AIMS01"`
	Version    string `json:"version" jsonschema:"Instrument version, e.g. 2-0"`
}

func registerQRS(mcpServer *mcp.Server, r *runner) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_qrs_info",
		Description: "Get a QRS (questionnaire/rating-scale) instrument from the CDISC Library. " +
			"Valid instrument/version pairs: " + qrsCombinations() + ".",
	}, r.qrsHandler())
}

func qrsCombinations() string {
	instruments := make([]string, 0, len(qrsVersions))
	for i := range qrsVersions {
		instruments = append(instruments, i)
	}
	sort.Strings(instruments)

	parts := make([]string, 0, len(instruments))
	for _, i := range instruments {
		parts = append(parts, fmt.Sprintf("%s (%s)", i, strings.Join(qrsVersions[i], ", ")))
	}
	return strings.Join(parts, "; ")
}

func (r *runner) qrsHandler() func(context.Context, *mcp.CallToolRequest, qrsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in qrsInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Instrument) == "" {
			return badRequestf("instrument is required"), nil, nil
		}
		if strings.TrimSpace(in.Version) == "" {
			return badRequestf("version is required"), nil, nil
		}

		valid, ok := qrsVersions[in.Instrument]
		if !ok {
			return badRequestf("invalid instrument %q, valid values: %s", in.Instrument, qrsCombinations()), nil, nil
		}
		if !contains(valid, in.Version) {
			return badRequestf("invalid version %q for instrument %q, valid values: %s",
				in.Version, in.Instrument, strings.Join(valid, ", ")), nil, nil
		}

		path := "/mdr/qrs/instruments/" + url.PathEscape(in.Instrument) + "/versions/" + url.PathEscape(in.Version)
		return r.call(ctx, "get_qrs_info", path, nil, nil)
	}
}
