// Copyright 2026 The ikpagrid Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/satkerboard/ikpagrid/internal/config"
	"github.com/satkerboard/ikpagrid/internal/mcpserver"
)

var mcpCatalog string

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running ikpagrid as an MCP server, exposing render, explain and catalog tools to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing ikpagrid's tools:
  - render:  Render an IKPA table file as JSON, HTML, Markdown or text
  - explain: Explain a column header
  - catalog: List the explanation keys

Logs go to stderr; stdout carries the protocol.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, cat, err := loadRunConfig(&config.Config{CatalogFile: mcpCatalog})
		if err != nil {
			return err
		}
		return mcpserver.Run(cmd.Context(), Version, cat, &mcp.StdioTransport{})
	},
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpCatalog, "catalog", "", "explanation overrides (.yaml, .yml or .toml)")
	mcpCmd.AddCommand(mcpServeCmd)
}
