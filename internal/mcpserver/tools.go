package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/satkerboard/ikpagrid/internal/catalog"
	"github.com/satkerboard/ikpagrid/internal/config"
	"github.com/satkerboard/ikpagrid/internal/output"
	"github.com/satkerboard/ikpagrid/internal/pipeline"
	"github.com/satkerboard/ikpagrid/internal/redact"
)

// RenderInput is the input schema for the render tool.
type RenderInput struct {
	Path   string `json:"path" jsonschema:"IKPA table file (.xlsx, .xlsm, .csv or .json)"`
	Format string `json:"format,omitempty" jsonschema:"Output format: json, html, markdown, text (default: json)"`
	Sheet  string `json:"sheet,omitempty" jsonschema:"Only render this workbook sheet"`
	Where  string `json:"where,omitempty" jsonschema:"Row filter expression, e.g. row[\"Nilai Total\"] >= 90"`
	Title  string `json:"title,omitempty" jsonschema:"Document title"`
}

// ExplainInput is the input schema for the explain tool.
type ExplainInput struct {
	Column string   `json:"column" jsonschema:"Exact column header"`
	With   []string `json:"with,omitempty" jsonschema:"Other headers of the same table; they decide the meaning of the overloaded final-score column"`
}

// CatalogInput is the input schema for the catalog tool. It takes no
// arguments.
type CatalogInput struct{}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

type tools struct {
	catalog *catalog.Catalog
}

// registerTools adds all ikpagrid tools to the MCP server.
func registerTools(server *mcp.Server, t *tools) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render an IKPA table file with pinned columns, zebra rows, a row-number column and column explanations. Returns the document in the requested format.",
		Annotations: readOnly,
	}, redacted(t.handleRender))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "explain",
		Description: "Explain an IKPA column header. Pass the table's other headers to disambiguate the final-score column.",
		Annotations: readOnly,
	}, redacted(t.handleExplain))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog",
		Description: "List every explanation key and its title.",
		Annotations: readOnly,
	}, redacted(t.handleCatalog))
}

// redacted strips the home directory from handler errors before they reach
// the client.
func redacted[In any](h mcp.ToolHandlerFor[In, any]) mcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		res, out, err := h(ctx, req, in)
		return res, out, redact.Error(err)
	}
}

func (t *tools) handleRender(ctx context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, any, error) {
	path, err := ResolveInput(input.Path)
	if err != nil {
		return nil, nil, err
	}

	fileCfg, err := config.LoadLayered(filepath.Dir(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Merge(fileCfg, &config.Config{
		OutputFormat: input.Format,
		Sheet:        input.Sheet,
		Where:        input.Where,
		Title:        input.Title,
	})
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "json"
	}
	formatter, err := output.GetFormatter(cfg.OutputFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("output_format: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}

	cat := t.catalog
	if cfg.FallbackText != "" {
		cat = cat.WithFallback(cfg.FallbackText)
	}

	p, err := pipeline.New(pipeline.Config{
		Inputs:  []string{path},
		Sheet:   cfg.Sheet,
		Where:   cfg.Where,
		Catalog: cat,
		Options: cfg.AnnotateOptions(),
		Strict:  true,
	})
	if err != nil {
		return nil, nil, err
	}
	result, err := p.Run(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("render failed: %w", err)
	}

	var buf bytes.Buffer
	doc := &output.Document{
		Title:        cfg.Title,
		Specs:        result.Specs(),
		Catalog:      cat,
		NumberFormat: cfg.NumberFormat,
	}
	if err := formatter.Format(doc, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}

	return textResult(buf.String()), nil, nil
}

func (t *tools) handleExplain(_ context.Context, _ *mcp.CallToolRequest, input ExplainInput) (*mcp.CallToolResult, any, error) {
	if input.Column == "" {
		return nil, nil, fmt.Errorf("column is required")
	}
	siblings := catalog.NewColumns(append(input.With, input.Column)...)
	key, ok := t.catalog.Resolve(input.Column, siblings)
	if !ok {
		return nil, nil, fmt.Errorf("column %q has no explanation", input.Column)
	}

	expl := t.catalog.Explain(key)
	var b strings.Builder
	if expl.Resolved {
		fmt.Fprintf(&b, "%s\n\n", expl.Title)
	}
	b.WriteString(expl.PlainText())
	return textResult(b.String()), nil, nil
}

func (t *tools) handleCatalog(_ context.Context, _ *mcp.CallToolRequest, _ CatalogInput) (*mcp.CallToolResult, any, error) {
	var b strings.Builder
	for _, k := range t.catalog.Keys() {
		e, _ := t.catalog.Lookup(k)
		fmt.Fprintf(&b, "- %s: %s\n", k, e.Title)
	}
	return textResult(b.String()), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
