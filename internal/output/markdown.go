package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/satkerboard/ikpagrid/internal/annotate"
	"github.com/satkerboard/ikpagrid/internal/catalog"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// annotationMarker flags annotated headers in text outputs.
const annotationMarker = "ⓘ"

// MarkdownFormatter writes the tables as GitHub-flavoured Markdown, followed
// by a legend of the explanations behind the marked columns.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the document to w. Hidden columns are left out.
func (m *MarkdownFormatter) Format(doc *Document, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n", doc.title()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "**Tabel:** %d | **Baris:** %d\n\n", len(doc.Specs), doc.rowCount()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	unresolved := false
	for _, s := range doc.Specs {
		if err := writeMarkdownTable(w, doc, s); err != nil {
			return err
		}
		for _, c := range s.Columns {
			if c.Annotated && c.Explanation == catalog.Unresolved {
				unresolved = true
			}
		}
	}

	return writeLegend(w, doc, unresolved)
}

func writeMarkdownTable(w io.Writer, doc *Document, s *annotate.RenderSpec) error {
	if _, err := fmt.Fprintf(w, "## %s (%d baris)\n\n", s.Title, len(s.Rows)); err != nil {
		return fmt.Errorf("write table heading: %w", err)
	}
	if len(s.Rows) == 0 {
		_, err := fmt.Fprint(w, "_Tidak ada data._\n\n")
		return err
	}

	cols := s.Visible()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = mdEscape(headerLabel(c))
	}

	var sb strings.Builder
	tw := tablewriter.NewWriter(&sb)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	tw.SetCenterSeparator("|")
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	rows := make([][]string, len(s.Rows))
	for i, r := range s.Rows {
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = mdEscape(doc.cell(r, c.Name))
		}
		rows[i] = cells
	}
	tw.AppendBulk(rows)
	tw.Render()

	if _, err := fmt.Fprintf(w, "%s\n", sb.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func writeLegend(w io.Writer, doc *Document, unresolved bool) error {
	expl := doc.explanations()
	if len(expl) == 0 && !unresolved {
		return nil
	}
	if _, err := fmt.Fprintf(w, "## Penjelasan kolom %s\n\n", annotationMarker); err != nil {
		return fmt.Errorf("write legend: %w", err)
	}
	for _, e := range expl {
		text := strings.Join(strings.Fields(e.PlainText()), " ")
		if _, err := fmt.Fprintf(w, "- **%s**: %s\n", e.Title, text); err != nil {
			return fmt.Errorf("write legend: %w", err)
		}
	}
	if unresolved {
		if _, err := fmt.Fprintf(w, "- **%s**: %s\n", catalog.ColumnNilaiAkhir, doc.catalog().Fallback()); err != nil {
			return fmt.Errorf("write legend: %w", err)
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func headerLabel(c annotate.Column) string {
	if c.Annotated {
		return c.Label + " " + annotationMarker
	}
	return c.Label
}

// mdEscape keeps cell text from breaking the table row.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
