package annotate

import (
	"encoding/json"

	"github.com/Velocidex/ordereddict"

	"github.com/satkerboard/ikpagrid/internal/catalog"
)

// RowStyle is the background and foreground colour of one row, as #rrggbb.
type RowStyle struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// Stripes is the pair of zebra styles a spec alternates between. Widgets
// that reorder or filter rows restripe them by displayed position.
type Stripes struct {
	Even RowStyle `json:"even"`
	Odd  RowStyle `json:"odd"`
}

// Default zebra styles.
var (
	DefaultEvenStyle = RowStyle{Background: "#ffffff", Foreground: "#000000"}
	DefaultOddStyle  = RowStyle{Background: "#f2f2f2", Foreground: "#000000"}
)

// Default column widths in pixels and the unit-name display label.
const (
	DefaultSequenceWidth = 50
	DefaultUnitNameWidth = 260
	DefaultUnitCodeWidth = 110
	DefaultUnitNameLabel = "Uraian Satker"
)

// Options tunes presentation. Zero fields take the defaults.
type Options struct {
	EvenStyle     RowStyle
	OddStyle      RowStyle
	SequenceWidth int
	UnitNameWidth int
	UnitCodeWidth int
	UnitNameLabel string
}

// DefaultOptions returns the stock presentation.
func DefaultOptions() Options {
	return Options{
		EvenStyle:     DefaultEvenStyle,
		OddStyle:      DefaultOddStyle,
		SequenceWidth: DefaultSequenceWidth,
		UnitNameWidth: DefaultUnitNameWidth,
		UnitCodeWidth: DefaultUnitCodeWidth,
		UnitNameLabel: DefaultUnitNameLabel,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.EvenStyle.Background == "" {
		o.EvenStyle.Background = d.EvenStyle.Background
	}
	if o.EvenStyle.Foreground == "" {
		o.EvenStyle.Foreground = d.EvenStyle.Foreground
	}
	if o.OddStyle.Background == "" {
		o.OddStyle.Background = d.OddStyle.Background
	}
	if o.OddStyle.Foreground == "" {
		o.OddStyle.Foreground = d.OddStyle.Foreground
	}
	if o.SequenceWidth <= 0 {
		o.SequenceWidth = d.SequenceWidth
	}
	if o.UnitNameWidth <= 0 {
		o.UnitNameWidth = d.UnitNameWidth
	}
	if o.UnitCodeWidth <= 0 {
		o.UnitCodeWidth = d.UnitCodeWidth
	}
	if o.UnitNameLabel == "" {
		o.UnitNameLabel = d.UnitNameLabel
	}
	return o
}

// Column is the display configuration of one column.
type Column struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	Hidden     bool   `json:"hidden,omitempty"`
	Pinned     bool   `json:"pinned,omitempty"`
	Width      int    `json:"width,omitempty"`
	Sortable   bool   `json:"sortable"`
	Filterable bool   `json:"filterable"`
	Annotated  bool   `json:"annotated,omitempty"`

	// Explanation is meaningful only when Annotated. Unresolved means the
	// popup shows the fallback text.
	Explanation catalog.Key `json:"-"`
}

// MarshalJSON emits the explanation key by name, omitting it when the
// column is not annotated or the key is unresolved.
func (c Column) MarshalJSON() ([]byte, error) {
	type plain Column
	out := struct {
		plain
		Explanation *catalog.Key `json:"explanation,omitempty"`
	}{plain: plain(c)}
	if c.Annotated && c.Explanation != catalog.Unresolved {
		k := c.Explanation
		out.Explanation = &k
	}
	return json.Marshal(out)
}

// Row is one display row.
type Row struct {
	Seq    int               `json:"seq"`
	Style  RowStyle          `json:"style"`
	Values *ordereddict.Dict `json:"values"`
}

// RenderSpec is the complete, derived render configuration of one table.
// It is rebuilt on every Annotate call.
type RenderSpec struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Source  string   `json:"source,omitempty"`
	Stripes Stripes  `json:"stripes"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Hidden returns the names of hidden columns.
func (s *RenderSpec) Hidden() []string {
	return s.names(func(c Column) bool { return c.Hidden })
}

// Pinned returns the names of pinned columns in display order.
func (s *RenderSpec) Pinned() []string {
	return s.names(func(c Column) bool { return c.Pinned })
}

// Annotated returns the names of click-annotated columns.
func (s *RenderSpec) Annotated() []string {
	return s.names(func(c Column) bool { return c.Annotated })
}

// Visible returns the columns that are displayed, in order.
func (s *RenderSpec) Visible() []Column {
	out := make([]Column, 0, len(s.Columns))
	for _, c := range s.Columns {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// Column returns the column called name.
func (s *RenderSpec) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Explain returns what clicking the column called name reveals. The second
// result is false when the column is absent or not annotated.
func (s *RenderSpec) Explain(cat *catalog.Catalog, name string) (catalog.Explanation, bool) {
	c, ok := s.Column(name)
	if !ok || !c.Annotated {
		return catalog.Explanation{}, false
	}
	return cat.Explain(c.Explanation), true
}

func (s *RenderSpec) names(keep func(Column) bool) []string {
	var out []string
	for _, c := range s.Columns {
		if keep(c) {
			out = append(out, c.Name)
		}
	}
	return out
}
