package output

import (
	"github.com/satkerboard/ikpagrid/internal/annotate"
	"github.com/satkerboard/ikpagrid/internal/catalog"
	"github.com/satkerboard/ikpagrid/internal/table"
)

// DefaultTitle heads documents that set no title.
const DefaultTitle = "Indikator Kinerja Pelaksanaan Anggaran"

// Document is everything a formatter needs: the rendered tables and the
// catalog their annotations resolve against.
type Document struct {
	Title        string
	Specs        []*annotate.RenderSpec
	Catalog      *catalog.Catalog // Nil means catalog.Default().
	NumberFormat string           // humanize pattern; empty means table.DefaultNumberFormat.
}

func (d *Document) title() string {
	if d.Title == "" {
		return DefaultTitle
	}
	return d.Title
}

func (d *Document) catalog() *catalog.Catalog {
	if d.Catalog == nil {
		return catalog.Default()
	}
	return d.Catalog
}

// cell formats the value of column name in row r.
func (d *Document) cell(r annotate.Row, name string) string {
	v, _ := r.Values.Get(name)
	return table.FormatValue(v, d.NumberFormat)
}

// explanations returns the resolved explanation of every key referenced by
// an annotated column of any spec, in key order.
func (d *Document) explanations() []catalog.Explanation {
	cat := d.catalog()
	seen := make(map[catalog.Key]bool)
	for _, s := range d.Specs {
		for _, c := range s.Columns {
			if c.Annotated && c.Explanation != catalog.Unresolved {
				seen[c.Explanation] = true
			}
		}
	}
	var out []catalog.Explanation
	for _, k := range catalog.AllKeys() {
		if seen[k] {
			out = append(out, cat.Explain(k))
		}
	}
	return out
}

func (d *Document) rowCount() int {
	n := 0
	for _, s := range d.Specs {
		n += len(s.Rows)
	}
	return n
}
