package loader

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/satkerboard/ikpagrid/internal/table"
)

func init() {
	Register(&CSVLoader{})
}

// CSVLoader reads delimited text. The delimiter is ';' when the header line
// holds more semicolons than commas, as spreadsheet exports in the id-ID
// locale do, and ',' otherwise. Semicolon files also use decimal commas,
// so their cells are parsed with table.ParseDecimalComma.
type CSVLoader struct{}

// Compile-time interface check.
var _ Loader = (*CSVLoader)(nil)

// Name returns the loader name.
func (l *CSVLoader) Name() string { return "csv" }

// Extensions returns the handled extensions.
func (l *CSVLoader) Extensions() []string { return []string{".csv"} }

// Load reads the file at path as a single table named after the file.
func (l *CSVLoader) Load(ctx context.Context, path string, opts Options) ([]*table.Table, error) {
	data, err := opts.fs().ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = detectDelimiter(data)
	parse := table.ParseValue
	if r.Comma == ';' {
		parse = table.ParseDecimalComma
	}
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	grid, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	t, err := fromGrid(stem(path), path, grid, parse)
	if err != nil {
		return nil, err
	}
	return []*table.Table{t}, nil
}

func detectDelimiter(data []byte) rune {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
			return ';'
		}
		break
	}
	return ','
}
