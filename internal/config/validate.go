package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/satkerboard/ikpagrid/internal/filter"
	"github.com/satkerboard/ikpagrid/internal/output"
	"github.com/satkerboard/ikpagrid/internal/report"
)

// numberPattern matches the go-humanize float patterns: optional sign,
// optional thousands separator, optional decimal separator and precision.
var numberPattern = regexp.MustCompile(`^\+?#(.###)?(.#*)?$`)

// maxColumnWidth bounds configured pixel widths.
const maxColumnWidth = 1000

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if cfg.CatalogFile != "" {
		switch strings.ToLower(filepath.Ext(cfg.CatalogFile)) {
		case ".yaml", ".yml", ".toml":
		default:
			errs = append(errs, fmt.Sprintf("catalog_file: %q must be a .yaml, .yml or .toml file", cfg.CatalogFile))
		}
	}

	if cfg.NumberFormat != "" && !numberPattern.MatchString(cfg.NumberFormat) {
		errs = append(errs, fmt.Sprintf("number_format: invalid pattern %q (e.g. \"#.###,##\")", cfg.NumberFormat))
	}

	if cfg.Where != "" {
		if _, err := filter.Compile(cfg.Where); err != nil {
			errs = append(errs, fmt.Sprintf("where: %v", err))
		}
	}

	colours := []struct {
		key, val string
	}{
		{"row_styles.even.background", cfg.RowStyles.Even.Background},
		{"row_styles.even.foreground", cfg.RowStyles.Even.Foreground},
		{"row_styles.odd.background", cfg.RowStyles.Odd.Background},
		{"row_styles.odd.foreground", cfg.RowStyles.Odd.Foreground},
	}
	for _, c := range colours {
		if c.val == "" {
			continue
		}
		if _, _, _, err := report.ParseHex(c.val); err != nil || !strings.HasPrefix(c.val, "#") {
			errs = append(errs, fmt.Sprintf("%s: invalid colour %q: want #rrggbb", c.key, c.val))
		}
	}

	widths := []struct {
		key string
		val int
	}{
		{"columns.sequence_width", cfg.Columns.SequenceWidth},
		{"columns.unit_name_width", cfg.Columns.UnitNameWidth},
		{"columns.unit_code_width", cfg.Columns.UnitCodeWidth},
	}
	for _, w := range widths {
		if w.val < 0 || w.val > maxColumnWidth {
			errs = append(errs, fmt.Sprintf("%s: must be between 0 and %d, got %d", w.key, maxColumnWidth, w.val))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
