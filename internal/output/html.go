package output

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/satkerboard/ikpagrid/internal/annotate"
	"github.com/satkerboard/ikpagrid/internal/catalog"
	"github.com/satkerboard/ikpagrid/internal/table"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes the tables as a self-contained HTML dashboard page:
// sticky pinned columns, zebra rows, and a click-to-reveal explanation popup
// on every annotated header and cell.
type HTMLFormatter struct {
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// Format writes the document as an HTML page to w.
func (h *HTMLFormatter) Format(doc *Document, w io.Writer) error {
	if doc.rowCount() == 0 {
		return h.writeEmpty(w, doc.title())
	}

	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // intentional unescaped embedding
			},
		}).Parse(htmlTemplate))
	})

	now := time.Now()
	if h.nowFunc != nil {
		now = h.nowFunc()
	}

	if err := htmlTmpl.Execute(w, buildHTMLData(doc, now)); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the dashboard.
type htmlData struct {
	Title        string
	GeneratedAt  string
	TotalRows    int
	Tables       []htmlTable
	Explanations map[string]htmlExplanation
	Fallback     string
	State        []*annotate.RenderSpec
}

type htmlExplanation struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

type htmlTable struct {
	ID      string
	Title   string
	Source  string
	Headers []htmlHeader
	Rows    []htmlRow
}

type htmlHeader struct {
	Name       string
	Label      string
	Annotated  bool
	Explain    string
	Pinned     bool
	Style      template.CSS
	Sortable   bool
	Filterable bool
}

type htmlRow struct {
	Seq   int
	Style template.CSS
	Cells []htmlCell
}

type htmlCell struct {
	Text      string
	SortKey   string
	Numeric   bool
	Annotated bool
	Explain   string
	Pinned    bool
	Style     template.CSS
}

func buildHTMLData(doc *Document, now time.Time) htmlData {
	cat := doc.catalog()
	data := htmlData{
		Title:        doc.title(),
		GeneratedAt:  now.UTC().Format("2006-01-02 15:04 UTC"),
		TotalRows:    doc.rowCount(),
		Explanations: make(map[string]htmlExplanation),
		Fallback:     cat.Fallback(),
		State:        doc.Specs,
	}
	for _, e := range doc.explanations() {
		data.Explanations[e.Key.String()] = htmlExplanation{Title: e.Title, HTML: e.HTML}
	}
	for _, s := range doc.Specs {
		data.Tables = append(data.Tables, buildHTMLTable(doc, s))
	}
	return data
}

func buildHTMLTable(doc *Document, s *annotate.RenderSpec) htmlTable {
	cols := s.Visible()
	t := htmlTable{ID: s.ID, Title: s.Title, Source: s.Source}

	// Pinned columns stick at the cumulative width of the pinned columns
	// before them.
	styles := make([]template.CSS, len(cols))
	left := 0
	for i, c := range cols {
		switch {
		case c.Pinned:
			styles[i] = template.CSS(fmt.Sprintf("left:%dpx;width:%dpx;min-width:%dpx;max-width:%dpx", left, c.Width, c.Width, c.Width))
			left += c.Width
		case c.Width > 0:
			styles[i] = template.CSS(fmt.Sprintf("width:%dpx;min-width:%dpx", c.Width, c.Width))
		}
	}

	for i, c := range cols {
		t.Headers = append(t.Headers, htmlHeader{
			Name:       c.Name,
			Label:      c.Label,
			Annotated:  c.Annotated,
			Explain:    explainKey(c),
			Pinned:     c.Pinned,
			Style:      styles[i],
			Sortable:   c.Sortable,
			Filterable: c.Filterable,
		})
	}

	for _, r := range s.Rows {
		row := htmlRow{
			Seq:   r.Seq,
			Style: template.CSS(fmt.Sprintf("background-color:%s;color:%s", cssColor(r.Style.Background), cssColor(r.Style.Foreground))),
			Cells: make([]htmlCell, len(cols)),
		}
		for i, c := range cols {
			v, _ := r.Values.Get(c.Name)
			n, numeric := table.Number(v)
			cell := htmlCell{
				Text:      table.FormatValue(v, doc.NumberFormat),
				Numeric:   numeric && c.Name != annotate.UnitCodeColumn,
				Annotated: c.Annotated,
				Explain:   explainKey(c),
				Pinned:    c.Pinned,
				Style:     styles[i],
			}
			if numeric {
				cell.SortKey = strconv.FormatFloat(n, 'g', -1, 64)
			}
			row.Cells[i] = cell
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// explainKey is the popup lookup key of an annotated column. Unresolved
// columns get an empty key and show the fallback text.
func explainKey(c annotate.Column) string {
	if !c.Annotated || c.Explanation == catalog.Unresolved {
		return ""
	}
	return c.Explanation.String()
}

// cssColor passes through #rrggbb values and drops anything else.
func cssColor(s string) string {
	if len(s) != 7 || s[0] != '#' {
		return "inherit"
	}
	for _, r := range s[1:] {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F') {
			return "inherit"
		}
	}
	return s
}

func (h *HTMLFormatter) writeEmpty(w io.Writer, title string) error {
	const emptyHTML = `<!DOCTYPE html>
<html lang="id"><head><meta charset="utf-8"><title>%s</title>
<style>body{font-family:sans-serif;display:flex;justify-content:center;align-items:center;height:100vh;color:#6c757d;}</style>
</head><body><p>Tidak ada data.</p></body></html>`
	if _, err := fmt.Fprintf(w, emptyHTML, template.HTMLEscapeString(title)); err != nil {
		return fmt.Errorf("write empty html: %w", err)
	}
	return nil
}
