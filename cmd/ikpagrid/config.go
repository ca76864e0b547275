package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/satkerboard/ikpagrid/internal/config"
)

var (
	configGlobal   bool
	configDefaults bool
)

// Where a listed value comes from, lowest precedence first.
const (
	sourceDefault = "default"
	sourceGlobal  = "global"
	sourceDir     = "dir"
)

// configKeys describes every settable key, in help order.
var configKeys = []struct{ key, help string }{
	{"output_format", "render format: html, json, markdown or text"},
	{"title", "document title; empty uses \"Indikator Kinerja Pelaksanaan Anggaran\""},
	{"catalog_file", "YAML or TOML file overriding explanation titles and fragments"},
	{"number_format", "humanize pattern for fractional numbers, e.g. \"#.###,##\""},
	{"fallback_text", "popup text for a Nilai Akhir column that cannot be resolved"},
	{"sheet", "xlsx sheet to render; empty renders every sheet"},
	{"where", "row filter, e.g. row[\"Capaian Output\"] >= 90"},
	{"row_styles.even.background", "background of rows 1, 3, 5, ... as #rrggbb"},
	{"row_styles.even.foreground", "text colour of rows 1, 3, 5, ..."},
	{"row_styles.odd.background", "background of rows 2, 4, 6, ..."},
	{"row_styles.odd.foreground", "text colour of rows 2, 4, 6, ..."},
	{"columns.sequence_width", "width of the pinned No column in px"},
	{"columns.unit_name_width", "width of the pinned Uraian Satker column in px"},
	{"columns.unit_code_width", "width of the pinned Kode Satker column in px"},
	{"columns.unit_name_label", "header shown for Uraian Satker-RINGKAS"},
}

func configKeyHelp() string {
	width := 0
	for _, k := range configKeys {
		width = max(width, len(k.key))
	}
	var b strings.Builder
	for _, k := range configKeys {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, k.key, k.help)
	}
	return b.String()
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify table rendering settings",
	Long: `View and modify the settings render, explain and mcp serve start from.

Settings are layered: built-in defaults, then the global file
(~/.config/ikpagrid/config.yaml), then .ikpagrid.yaml in the working
directory, then command-line flags.

Keys:
` + configKeyHelp() + `
config set and config unset rewrite the YAML file and drop its comments.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of a setting",
	Long: `Print the value render would use for a key, falling back to the
built-in default. A section such as row_styles prints as YAML.

Examples:
  ikpagrid config get number_format
  ikpagrid config get row_styles.odd.background
  ikpagrid config get columns
  ikpagrid config get --global fallback_text`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a rendering setting",
	Long: `Set a key in .ikpagrid.yaml, or in the global file with --global.
The whole file is validated before it is written, so an unknown format,
a malformed colour or an out-of-range width leaves it untouched.

Examples:
  ikpagrid config set output_format markdown
  ikpagrid config set row_styles.odd.background "#eef3fb"
  ikpagrid config set columns.unit_name_width 300
  ikpagrid config set --global fallback_text "Belum ada penjelasan."`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a rendering setting",
	Long: `Remove a key from .ikpagrid.yaml, or from the global file with
--global, so the next layer down applies again.

Example:
  ikpagrid config unset columns.unit_name_label`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigUnset,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List settings with their source",
	Long: `List every configured key with the layer it comes from: (global) or
(dir). --defaults also lists built-in values that nothing overrides.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "read only the global config")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to the global config")
	configUnsetCmd.Flags().BoolVar(&configGlobal, "global", false, "remove from the global config")
	configListCmd.Flags().BoolVar(&configDefaults, "defaults", false, "include built-in defaults")

	configCmd.AddCommand(configGetCmd, configSetCmd, configUnsetCmd, configListCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	if configGlobal {
		cfg, err = config.LoadGlobal()
	} else {
		cfg, err = config.LoadLayered(".")
		if err == nil {
			cfg = config.Merge(config.Defaults(), cfg)
		}
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return err
	}
	return printValue(cmd, val)
}

// configTarget is the file set and unset write to.
func configTarget() string {
	if configGlobal {
		return config.GlobalConfigPath()
	}
	return filepath.Join(".", config.FileName)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	keyPath, rawValue := args[0], args[1]
	if err := config.ValidateKeyPath(keyPath); err != nil {
		return err
	}

	target := configTarget()
	data, err := config.LoadRaw(target)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if err := config.SetValue(data, keyPath, rawValue); err != nil {
		return fmt.Errorf("setting value: %w", err)
	}
	if err := writeValidated(target, data); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", keyPath, rawValue)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	keyPath := args[0]
	if err := config.ValidateKeyPath(keyPath); err != nil {
		return err
	}

	target := configTarget()
	data, err := config.LoadRaw(target)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if !config.DeleteValue(data, keyPath) {
		return fmt.Errorf("%s is not set in %s", keyPath, target)
	}
	if err := writeValidated(target, data); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", keyPath)
	return nil
}

// writeValidated decodes data as a Config, validates it and only then
// writes it to path.
func writeValidated(path string, data map[string]any) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := config.Validate(&cfg); err != nil {
		return err
	}
	if err := config.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

type configEntry struct {
	value  any
	source string
}

// layeredEntries returns every set key with the highest layer that sets it.
func layeredEntries(withDefaults bool) (map[string]configEntry, error) {
	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	dirCfg, err := config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("loading directory config: %w", err)
	}

	type layer struct {
		cfg    *config.Config
		source string
	}
	var layers []layer
	if withDefaults {
		layers = append(layers, layer{config.Defaults(), sourceDefault})
	}
	layers = append(layers, layer{globalCfg, sourceGlobal}, layer{dirCfg, sourceDir})

	out := make(map[string]configEntry)
	for _, l := range layers {
		flat, err := config.ToFlatMap(l.cfg)
		if err != nil {
			return nil, err
		}
		for k, v := range flat {
			out[k] = configEntry{value: v, source: l.source}
		}
	}
	return out, nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	entries, err := layeredEntries(configDefaults)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set; render uses the built-in defaults (see 'config list --defaults').")
		_, _ = fmt.Fprintln(w, "Run 'ikpagrid init' to write them to .ikpagrid.yaml, or 'ikpagrid config set <key> <value>'.")
		return nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		e := entries[k]
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, formatSource(e.source))
	}
	return nil
}

// printValue prints scalars as plain text and sections as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

var sourceColors = map[string]*color.Color{
	sourceDefault: color.New(color.Faint),
	sourceGlobal:  color.New(color.FgCyan),
	sourceDir:     color.New(color.FgGreen),
}

// formatSource returns the coloured "(source)" label.
func formatSource(source string) string {
	if c, ok := sourceColors[source]; ok {
		return c.Sprintf("(%s)", source)
	}
	return fmt.Sprintf("(%s)", source)
}
