// Copyright 2026 The ikpagrid Authors
// SPDX-License-Identifier: MIT

// Package report renders aligned, optionally coloured tables for terminals.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc // optional per-cell color function
}

type row struct {
	values []string
	style  *color.Color
}

// Table renders aligned text tables to an io.Writer.
type Table struct {
	columns []Column
	rows    []row
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are silently ignored;
// missing values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	t.AddStyledRow(nil, values...)
}

// AddStyledRow appends a row painted with style across its full width.
// A nil style leaves the row uncoloured.
func (t *Table) AddStyledRow(style *color.Color, values ...string) {
	r := row{values: make([]string, len(t.columns)), style: style}
	for i := range r.values {
		if i < len(values) {
			r.values[i] = values[i]
		}
	}
	t.rows = append(t.rows, r)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w with computed column widths.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, r := range t.rows {
		for i, cell := range r.values {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	if err := t.renderHeader(w, widths); err != nil {
		return err
	}

	parts := make([]string, len(t.columns))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	for _, r := range t.rows {
		if err := t.renderRow(w, r, widths); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) renderHeader(w io.Writer, widths []int) error {
	bold := color.New(color.Bold)
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = bold.Sprint(pad(col.Header, widths[i], col.Align))
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func (t *Table) renderRow(w io.Writer, r row, widths []int) error {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		val := r.values[i]
		if r.style != nil {
			parts[i] = r.style.Sprint(pad(val, widths[i], col.Align))
			continue
		}
		display := val
		if col.Color != nil {
			display = col.Color(val)
		}
		// Padding is based on raw value length, not ANSI-colored length.
		fill := strings.Repeat(" ", max(widths[i]-utf8.RuneCountInString(val), 0))
		if col.Align == AlignRight {
			parts[i] = fill + display
		} else {
			parts[i] = display + fill
		}
	}
	sep := "  "
	if r.style != nil {
		sep = r.style.Sprint(sep)
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, sep)); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func pad(s string, width int, align Alignment) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}
