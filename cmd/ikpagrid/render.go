// Copyright 2026 The ikpagrid Authors
// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/satkerboard/ikpagrid/internal/config"
	"github.com/satkerboard/ikpagrid/internal/output"
	"github.com/satkerboard/ikpagrid/internal/pipeline"
)

// defaultFormat applies when neither flags nor config choose one.
const defaultFormat = "html"

// Render-specific flag values.
var (
	renderFormat       string
	renderOutput       string
	renderTitle        string
	renderCatalog      string
	renderSheet        string
	renderWhere        string
	renderNumberFormat string
	renderFallbackText string
	renderStrict       bool
	renderConcurrency  int
)

// renderCmd renders one or more table files into a single document.
var renderCmd = &cobra.Command{
	Use:   "render <file>...",
	Short: "Render IKPA tables as an annotated grid",
	Long: `Render one or more IKPA table files (.xlsx, .xlsm, .csv, .json) into a
single document. Every sheet of a workbook becomes its own table.

Each table gets a leading row-number column, pinned unit name and unit code
columns, zebra row colours, a hidden internal total, and a clickable
explanation on every scoring column.

Examples:
  ikpagrid render ikpa.xlsx -o ikpa.html
  ikpagrid render ikpa.xlsx --sheet Aspek -f markdown
  ikpagrid render a.xlsx b.csv -f json --where 'row["Nilai Total"] >= 90'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format ("+strings.Join(output.Names(), ", ")+"; default html)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file path (default: stdout)")
	renderCmd.Flags().StringVar(&renderTitle, "title", "", "document title")
	renderCmd.Flags().StringVar(&renderCatalog, "catalog", "", "explanation overrides (.yaml, .yml or .toml)")
	renderCmd.Flags().StringVar(&renderSheet, "sheet", "", "only render this workbook sheet")
	renderCmd.Flags().StringVar(&renderWhere, "where", "", `row filter expression, e.g. 'row["Capaian Output"] < 80'`)
	renderCmd.Flags().StringVar(&renderNumberFormat, "number-format", "", `number pattern (default "#.###,##")`)
	renderCmd.Flags().StringVar(&renderFallbackText, "fallback-text", "", "text shown for columns without an explanation")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "fail on the first input that cannot be loaded")
	renderCmd.Flags().IntVarP(&renderConcurrency, "concurrency", "j", 0, "inputs loaded in parallel (default GOMAXPROCS)")
}

func runRender(cmd *cobra.Command, args []string) error {
	inputs, err := resolveInputs(args)
	if err != nil {
		return err
	}

	cfg, cat, err := loadRunConfig(&config.Config{
		OutputFormat: renderFormat,
		Title:        renderTitle,
		CatalogFile:  renderCatalog,
		NumberFormat: renderNumberFormat,
		FallbackText: renderFallbackText,
		Sheet:        renderSheet,
		Where:        renderWhere,
	})
	if err != nil {
		return err
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = defaultFormat
	}
	formatter, err := output.GetFormatter(cfg.OutputFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "ikpagrid: %v", err)
	}

	p, err := pipeline.New(pipeline.Config{
		Inputs:      inputs,
		Sheet:       cfg.Sheet,
		Where:       cfg.Where,
		Catalog:     cat,
		Options:     cfg.AnnotateOptions(),
		Strict:      renderStrict,
		Concurrency: renderConcurrency,
		FS:          cmdFS,
	})
	if err != nil {
		return exitError(ExitInvalidArgs, "ikpagrid: %v", err)
	}

	result, err := p.Run(cmd.Context())
	if err != nil {
		return exitError(ExitLoadFailure, "ikpagrid: %v", err)
	}
	if failed := result.Failed(); len(failed) == len(result.Inputs) {
		return exitError(ExitLoadFailure, "ikpagrid: no input could be loaded (%v)", failed[0].Err)
	}

	doc := &output.Document{
		Title:        cfg.Title,
		Specs:        result.Specs(),
		Catalog:      cat,
		NumberFormat: cfg.NumberFormat,
	}
	if err := writeDocument(cmd.OutOrStdout(), formatter, doc); err != nil {
		return err
	}

	rows := 0
	for _, in := range result.Inputs {
		rows += in.Rows
	}
	slog.Info("render complete",
		"tables", len(doc.Specs),
		"rows", humanize.Comma(int64(rows)),
		"failed", len(result.Failed()),
		"duration", result.Duration)
	return nil
}

func writeDocument(stdout io.Writer, formatter output.Formatter, doc *output.Document) error {
	w := stdout
	if renderOutput != "" {
		f, err := cmdFS.Create(renderOutput)
		if err != nil {
			return exitError(ExitRenderFailure, "ikpagrid: cannot create output file %q (%v)", renderOutput, err)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
	}

	if err := formatter.Format(doc, w); err != nil {
		return exitError(ExitRenderFailure, "ikpagrid: formatting failed (%v)", err)
	}
	return nil
}
