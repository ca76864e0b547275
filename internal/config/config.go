// Package config handles .ikpagrid.yaml configuration files.
package config

import (
	"github.com/satkerboard/ikpagrid/internal/annotate"
	"github.com/satkerboard/ikpagrid/internal/table"
)

// Config represents the contents of a .ikpagrid.yaml file.
type Config struct {
	OutputFormat string        `yaml:"output_format,omitempty"`
	Title        string        `yaml:"title,omitempty"`
	CatalogFile  string        `yaml:"catalog_file,omitempty"`
	NumberFormat string        `yaml:"number_format,omitempty"`
	FallbackText string        `yaml:"fallback_text,omitempty"`
	Sheet        string        `yaml:"sheet,omitempty"`
	Where        string        `yaml:"where,omitempty"`
	RowStyles    RowStyles     `yaml:"row_styles,omitempty"`
	Columns      ColumnsConfig `yaml:"columns,omitempty"`
}

// RowStyles holds the zebra colours.
type RowStyles struct {
	Even StyleConfig `yaml:"even,omitempty"`
	Odd  StyleConfig `yaml:"odd,omitempty"`
}

// StyleConfig is one row style, as #rrggbb colours.
type StyleConfig struct {
	Background string `yaml:"background,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// ColumnsConfig tunes the pinned columns.
type ColumnsConfig struct {
	SequenceWidth int    `yaml:"sequence_width,omitempty"`
	UnitNameWidth int    `yaml:"unit_name_width,omitempty"`
	UnitCodeWidth int    `yaml:"unit_code_width,omitempty"`
	UnitNameLabel string `yaml:"unit_name_label,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".ikpagrid.yaml"

// AnnotateOptions converts the presentation settings. Unset fields stay
// zero and take the annotator defaults.
func (c *Config) AnnotateOptions() annotate.Options {
	return annotate.Options{
		EvenStyle:     annotate.RowStyle(c.RowStyles.Even),
		OddStyle:      annotate.RowStyle(c.RowStyles.Odd),
		SequenceWidth: c.Columns.SequenceWidth,
		UnitNameWidth: c.Columns.UnitNameWidth,
		UnitCodeWidth: c.Columns.UnitCodeWidth,
		UnitNameLabel: c.Columns.UnitNameLabel,
	}
}

// Defaults returns a config populated with every default value, as written
// by ikpagrid init.
func Defaults() *Config {
	o := annotate.DefaultOptions()
	return &Config{
		OutputFormat: "html",
		NumberFormat: table.DefaultNumberFormat,
		RowStyles: RowStyles{
			Even: StyleConfig(o.EvenStyle),
			Odd:  StyleConfig(o.OddStyle),
		},
		Columns: ColumnsConfig{
			SequenceWidth: o.SequenceWidth,
			UnitNameWidth: o.UnitNameWidth,
			UnitCodeWidth: o.UnitCodeWidth,
			UnitNameLabel: o.UnitNameLabel,
		},
	}
}
