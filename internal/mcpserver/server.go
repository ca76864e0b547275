// Copyright 2026 The ikpagrid Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/satkerboard/ikpagrid/internal/catalog"
)

// New creates an MCP server with ikpagrid's tools registered. A nil cat
// means catalog.Default().
func New(version string, cat *catalog.Catalog) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ikpagrid",
		Title:   "ikpagrid: annotated IKPA tables",
		Version: version,
	}, nil)

	if cat == nil {
		cat = catalog.Default()
	}
	registerTools(server, &tools{catalog: cat})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, cat *catalog.Catalog, transport mcp.Transport) error {
	return New(version, cat).Run(ctx, transport)
}
