package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/satkerboard/ikpagrid/internal/catalog"
	"github.com/satkerboard/ikpagrid/internal/config"
)

// Explain-specific flag values.
var (
	explainWith    []string
	explainCatalog string
)

// explainCmd prints what clicking a column header would reveal.
var explainCmd = &cobra.Command{
	Use:   "explain <column>",
	Short: "Explain an IKPA column",
	Long: `Print the explanation shown when a column header is clicked.

The final-score column "Nilai Akhir (Nilai Total/Konversi Bobot)" means
different things in aspect and component tables; pass the other headers of
the table with --with to pick the right explanation.

Examples:
  ikpagrid explain "Revisi DIPA"
  ikpagrid explain "Nilai Akhir (Nilai Total/Konversi Bobot)" --with "Kualitas Perencanaan Anggaran"`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().StringSliceVar(&explainWith, "with", nil, "other column headers of the same table (comma-separated)")
	explainCmd.Flags().StringVar(&explainCatalog, "catalog", "", "explanation overrides (.yaml, .yml or .toml)")
}

func runExplain(cmd *cobra.Command, args []string) error {
	column := args[0]

	_, cat, err := loadRunConfig(&config.Config{CatalogFile: explainCatalog})
	if err != nil {
		return err
	}

	siblings := catalog.NewColumns(append(trimList(explainWith), column)...)
	key, ok := cat.Resolve(column, siblings)
	if !ok {
		return exitError(ExitInvalidArgs, "ikpagrid: column %q has no explanation", column)
	}

	w := cmd.OutOrStdout()
	expl := cat.Explain(key)
	if expl.Resolved {
		_, _ = color.New(color.Bold).Fprintln(w, expl.Title)
		_, _ = fmt.Fprintln(w)
	}
	_, _ = fmt.Fprintln(w, expl.PlainText())
	return nil
}
