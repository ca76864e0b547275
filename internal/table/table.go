// Package table defines the core data types for ikpagrid: tabular datasets
// of named columns as delivered by a loader.
package table

import (
	"github.com/Velocidex/ordereddict"
)

// Table is one dataset to render: a header and rows aligned to it.
type Table struct {
	Name    string   // Sheet or file stem; used as the section title.
	Source  string   // Path the table was loaded from.
	Columns []string // Header in input order. May contain duplicates.
	Rows    []Row    // Records in input order.
}

// Row holds one record's values, positionally aligned with Table.Columns.
// A row shorter than the header is treated as having nil trailing values.
type Row []any

// Value returns the value at column index i, or nil when the row is short.
func (r Row) Value(i int) any {
	if i < 0 || i >= len(r) {
		return nil
	}
	return r[i]
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether name appears in the header (exact match).
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// ColumnIndex returns the index of the first column called name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Record returns row i as a map of column name to value. When the header has
// duplicate names the first occurrence wins.
func (t *Table) Record(i int) map[string]any {
	rec := make(map[string]any, len(t.Columns))
	row := t.Rows[i]
	for ci, name := range t.Columns {
		if _, seen := rec[name]; seen {
			continue
		}
		rec[name] = row.Value(ci)
	}
	return rec
}

// FromRecords builds a Table from ordered records. The header is the union of
// all keys in order of first appearance.
func FromRecords(name, source string, records []*ordereddict.Dict) *Table {
	t := &Table{Name: name, Source: source}
	index := make(map[string]int)
	for _, rec := range records {
		for _, k := range rec.Keys() {
			if _, ok := index[k]; !ok {
				index[k] = len(t.Columns)
				t.Columns = append(t.Columns, k)
			}
		}
	}
	for _, rec := range records {
		row := make(Row, len(t.Columns))
		for _, k := range rec.Keys() {
			v, _ := rec.Get(k)
			row[index[k]] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
