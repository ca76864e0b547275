package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/satkerboard/ikpagrid/internal/config"
)

// Init-specific flag values.
var initForce bool

// initCmd writes a starter config.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter .ikpagrid.yaml",
	Long: `Write .ikpagrid.yaml with every setting at its default value, ready to
edit. Existing files are left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing .ikpagrid.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	absPath, err := cmdFS.Abs(dir)
	if err != nil {
		return exitError(ExitInvalidArgs, "ikpagrid: cannot resolve path %q (%v)", dir, err)
	}
	info, err := cmdFS.Stat(absPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "ikpagrid: path %q does not exist", dir)
	}
	if !info.IsDir() {
		return exitError(ExitInvalidArgs, "ikpagrid: %q is not a directory", dir)
	}

	w := cmd.OutOrStdout()
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	dim := color.New(color.Faint)

	target := filepath.Join(absPath, config.FileName)
	existed := false
	if _, err := cmdFS.Stat(target); err == nil {
		existed = true
		if !initForce {
			_, _ = fmt.Fprintf(w, "%s%s %s\n", dim.Sprint("  - "), config.FileName, dim.Sprint("(exists, use --force to overwrite)"))
			return nil
		}
	}

	slog.Info("writing config", "path", target)
	var buf bytes.Buffer
	if err := config.Write(&buf, config.Defaults()); err != nil {
		return fmt.Errorf("ikpagrid: init failed (%v)", err)
	}
	if err := cmdFS.WriteFile(target, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("ikpagrid: init failed (%v)", err)
	}

	prefix := green.Sprint("  + ")
	op := "created"
	if existed {
		prefix = yellow.Sprint("  ~ ")
		op = "overwritten"
	}
	_, _ = fmt.Fprintf(w, "%s%s %s\n", prefix, config.FileName, dim.Sprintf("(%s)", op))
	_, _ = fmt.Fprintln(w)
	_, _ = color.New(color.Bold).Fprintln(w, "Next steps:")
	_, _ = fmt.Fprintln(w, "  1. Review .ikpagrid.yaml and adjust colours and widths")
	_, _ = fmt.Fprintln(w, "  2. Run: ikpagrid render ikpa.xlsx -o ikpa.html")
	return nil
}
