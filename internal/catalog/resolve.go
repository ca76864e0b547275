package catalog

// Column headers with special meaning to the resolver.
const (
	// ColumnNilaiAkhir is the overloaded final-score header. Its meaning
	// depends on which sibling columns are present.
	ColumnNilaiAkhir = "Nilai Akhir (Nilai Total/Konversi Bobot)"

	// ColumnAspectGroup is the first top-level aspect group. Its presence
	// marks an aspect-level table.
	ColumnAspectGroup = "Kualitas Perencanaan Anggaran"

	// ColumnRevisiDIPA is the DIPA-revision indicator. Its presence marks a
	// component-level table.
	ColumnRevisiDIPA = "Revisi DIPA"
)

// columnKeys maps literal column headers to keys. Synthetic keys and the
// overloaded header are absent.
var columnKeys = func() map[string]Key {
	m := make(map[string]Key)
	for _, k := range AllKeys() {
		if k.Synthetic() {
			continue
		}
		m[k.String()] = k
	}
	return m
}()

// Columns is the set of header names present in one table.
type Columns map[string]bool

// NewColumns builds a Columns set from a header.
func NewColumns(names ...string) Columns {
	cs := make(Columns, len(names))
	for _, n := range names {
		cs[n] = true
	}
	return cs
}

// Resolve maps a column header to an explanation key given the other columns
// of the same table. The boolean reports whether the column is annotated at
// all. Matching is exact and case-sensitive.
//
// The overloaded final-score header is always annotated; it resolves to the
// aspect-level entry when the first aspect group is present, otherwise to the
// component-level entry when Revisi DIPA is present, otherwise Unresolved.
// The aspect check wins when both are present.
func (c *Catalog) Resolve(column string, siblings Columns) (Key, bool) {
	if column == ColumnNilaiAkhir {
		switch {
		case siblings[ColumnAspectGroup]:
			return NilaiAkhirAspek, true
		case siblings[ColumnRevisiDIPA]:
			return NilaiAkhirKomponen, true
		default:
			return Unresolved, true
		}
	}
	k, ok := columnKeys[column]
	if !ok {
		return Unresolved, false
	}
	if _, has := c.entries[k]; !has {
		return Unresolved, false
	}
	return k, true
}

// KeyForColumn returns the key whose literal header is column.
func KeyForColumn(column string) (Key, bool) {
	k, ok := columnKeys[column]
	return k, ok
}
