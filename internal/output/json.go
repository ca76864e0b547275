package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/satkerboard/ikpagrid/internal/annotate"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope is the document shape handed to external grid widgets.
type JSONEnvelope struct {
	Tables       []*annotate.RenderSpec     `json:"tables"`
	Explanations map[string]JSONExplanation `json:"explanations"`
	Fallback     string                     `json:"fallback"`
	Metadata     JSONMetadata               `json:"metadata"`
}

// JSONExplanation is one catalog entry referenced by the tables.
type JSONExplanation struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

// JSONMetadata describes the render run.
type JSONMetadata struct {
	Title       string `json:"title"`
	TableCount  int    `json:"table_count"`
	RowCount    int    `json:"row_count"`
	GeneratedAt string `json:"generated_at"`
}

// JSONFormatter writes render specs as a JSON object with metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces.
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the document as JSON to w. Hidden columns keep their values
// in each row; consumers hide them using the column flags.
func (f *JSONFormatter) Format(doc *Document, w io.Writer) error {
	specs := doc.Specs
	if specs == nil {
		specs = []*annotate.RenderSpec{}
	}

	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}

	envelope := JSONEnvelope{
		Tables:       specs,
		Explanations: make(map[string]JSONExplanation),
		Fallback:     doc.catalog().Fallback(),
		Metadata: JSONMetadata{
			Title:       doc.title(),
			TableCount:  len(specs),
			RowCount:    doc.rowCount(),
			GeneratedAt: now.UTC().Format("2006-01-02T15:04:05Z"),
		},
	}
	for _, e := range doc.explanations() {
		envelope.Explanations[e.Key.String()] = JSONExplanation{Title: e.Title, HTML: e.HTML}
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false // default to pretty on error
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}

	// For non-file writers (e.g., bytes.Buffer in tests), default to pretty.
	return false
}
