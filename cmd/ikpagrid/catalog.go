package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/satkerboard/ikpagrid/internal/config"
	"github.com/satkerboard/ikpagrid/internal/report"
)

var catalogFile string

// catalogCmd lists the explanation catalog.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the column explanations",
	Long: `List every explanation key with its title. Keys marked "synthetic" are
not column headers; the final-score column resolves to them depending on the
table's other columns.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFile, "catalog", "", "explanation overrides (.yaml, .yml or .toml)")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	_, cat, err := loadRunConfig(&config.Config{CatalogFile: catalogFile})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s (%d entries)\n\n", report.SectionTitle("Explanation catalog"), cat.Len())

	dim := color.New(color.Faint)
	tbl := report.NewTable(
		report.Column{Header: "Key"},
		report.Column{Header: "Title"},
		report.Column{Header: "Kind", Color: func(s string) string { return dim.Sprint(s) }},
	)
	for _, k := range cat.Keys() {
		e, _ := cat.Lookup(k)
		kind := "column"
		if k.Synthetic() {
			kind = "synthetic"
		}
		tbl.AddRow(k.String(), e.Title, kind)
	}
	return tbl.Render(w)
}
