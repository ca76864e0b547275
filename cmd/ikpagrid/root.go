package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	ikpalog "github.com/satkerboard/ikpagrid/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for ikpagrid.
var rootCmd = &cobra.Command{
	Use:   "ikpagrid",
	Short: "Render IKPA score tables as annotated grids",
	Long: `ikpagrid renders IKPA (Indikator Kinerja Pelaksanaan Anggaran) score
tables exported from spreadsheets as readable grids: a row-number column,
pinned unit columns, zebra rows and click-to-reveal explanations of every
scoring column. Output is a self-contained HTML page, JSON for other grid
widgets, Markdown, or a coloured terminal table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		ikpalog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
