package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/satkerboard/ikpagrid/internal/annotate"
	"github.com/satkerboard/ikpagrid/internal/report"
	"github.com/satkerboard/ikpagrid/internal/table"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

// TextFormatter writes the tables for a terminal, painting each row with its
// zebra style when colour is enabled.
type TextFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format writes the document to w.
func (f *TextFormatter) Format(doc *Document, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", report.SectionTitle(doc.title())); err != nil {
		return fmt.Errorf("write title: %w", err)
	}
	for _, s := range doc.Specs {
		if err := f.writeSpec(w, doc, s); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) writeSpec(w io.Writer, doc *Document, s *annotate.RenderSpec) error {
	if _, err := fmt.Fprintf(w, "%s (%d baris)\n", report.SectionTitle(s.Title), len(s.Rows)); err != nil {
		return fmt.Errorf("write table title: %w", err)
	}
	if len(s.Rows) == 0 {
		_, err := fmt.Fprint(w, "  Tidak ada data.\n\n")
		return err
	}

	cols := s.Visible()
	tcols := make([]report.Column, len(cols))
	for i, c := range cols {
		tcols[i] = report.Column{Header: headerLabel(c)}
		if numericColumn(s, c) {
			tcols[i].Align = report.AlignRight
		}
	}
	tbl := report.NewTable(tcols...)

	styles := make(map[annotate.RowStyle]*color.Color, 2)
	for _, r := range s.Rows {
		st, ok := styles[r.Style]
		if !ok {
			st = report.RowColor(r.Style.Background, r.Style.Foreground)
			styles[r.Style] = st
		}
		values := make([]string, len(cols))
		for i, c := range cols {
			values[i] = doc.cell(r, c.Name)
		}
		tbl.AddStyledRow(st, values...)
	}

	if err := tbl.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// numericColumn reports whether every non-empty value of c is a number.
// The unit code column stays left-aligned.
func numericColumn(s *annotate.RenderSpec, c annotate.Column) bool {
	if c.Name == annotate.UnitCodeColumn {
		return false
	}
	seen := false
	for _, r := range s.Rows {
		v, _ := r.Values.Get(c.Name)
		if v == nil {
			continue
		}
		if _, ok := table.Number(v); !ok {
			return false
		}
		seen = true
	}
	return seen
}
