package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func New() *mcp.Server {
	return mcp.NewServer(
		&mcp.Implementation{
			Name:    "cdisc-library-mcp",
			Version: "0.1.0",
		},
		nil,
	)
}

// Run serves tool calls over stdio until the transport closes.
func Run(server *mcp.Server) error {
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
