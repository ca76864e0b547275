// Copyright 2026 The ikpagrid Authors
// SPDX-License-Identifier: MIT

// Package annotate turns a loaded IKPA table into a RenderSpec: the column,
// row and explanation configuration a grid widget needs to display it.
package annotate

import (
	"github.com/Velocidex/ordereddict"
	"github.com/google/uuid"

	"github.com/satkerboard/ikpagrid/internal/catalog"
	"github.com/satkerboard/ikpagrid/internal/table"
)

// Column headers the annotator treats specially.
const (
	SequenceColumn      = "No"
	InternalTotalColumn = "Nilai Total"
	UnitNameColumn      = "Uraian Satker-RINGKAS"
	UnitCodeColumn      = "Kode Satker"
)

// specNamespace seeds RenderSpec IDs.
var specNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://ikpagrid/render-spec"))

// Annotate builds the RenderSpec for t. A table with a header but no rows
// still gets its column configuration. It never fails: absent optional
// columns are skipped and unresolvable explanations fall back to the
// catalog's placeholder at display time. Neither t nor cat is modified.
func Annotate(t *table.Table, cat *catalog.Catalog, opts Options) *RenderSpec {
	opts = opts.withDefaults()

	spec := &RenderSpec{
		ID:     specID(t),
		Title:  t.Name,
		Source: t.Source,
		Stripes: Stripes{
			Even: opts.EvenStyle,
			Odd:  opts.OddStyle,
		},
	}
	cols := dedupe(t.Columns)
	siblings := catalog.NewColumns(cols...)

	spec.Columns = make([]Column, 0, len(cols)+1)
	spec.Columns = append(spec.Columns, Column{
		Name:   SequenceColumn,
		Label:  SequenceColumn,
		Pinned: true,
		Width:  opts.SequenceWidth,
	})

	var unitName, unitCode *Column
	rest := make([]Column, 0, len(cols))
	for _, name := range cols {
		c := Column{
			Name:       name,
			Label:      name,
			Sortable:   true,
			Filterable: true,
		}
		if k, ok := cat.Resolve(name, siblings); ok {
			c.Annotated = true
			c.Explanation = k
		}
		switch name {
		case InternalTotalColumn:
			c.Hidden = true
		case UnitNameColumn:
			c.Label = opts.UnitNameLabel
			c.Pinned = true
			c.Width = opts.UnitNameWidth
			unitName = &c
			continue
		case UnitCodeColumn:
			c.Pinned = true
			c.Width = opts.UnitCodeWidth
			unitCode = &c
			continue
		}
		rest = append(rest, c)
	}
	if unitName != nil {
		spec.Columns = append(spec.Columns, *unitName)
	}
	if unitCode != nil {
		spec.Columns = append(spec.Columns, *unitCode)
	}
	spec.Columns = append(spec.Columns, rest...)

	index := firstIndex(t.Columns)
	spec.Rows = make([]Row, t.Len())
	for i, src := range t.Rows {
		seq := i + 1
		values := ordereddict.NewDict().Set(SequenceColumn, seq)
		for _, c := range spec.Columns[1:] {
			values.Set(c.Name, src.Value(index[c.Name]))
		}
		style := opts.EvenStyle
		if i%2 == 1 {
			style = opts.OddStyle
		}
		spec.Rows[i] = Row{Seq: seq, Style: style, Values: values}
	}
	return spec
}

// dedupe drops the incoming sequence column and repeated names, keeping the
// first occurrence of each.
func dedupe(columns []string) []string {
	seen := make(map[string]bool, len(columns))
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if c == SequenceColumn || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func firstIndex(columns []string) map[string]int {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := idx[c]; !ok {
			idx[c] = i
		}
	}
	return idx
}

func specID(t *table.Table) string {
	return "ikpa-" + uuid.NewSHA1(specNamespace, []byte(t.Source+"#"+t.Name)).String()
}
