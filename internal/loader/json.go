package loader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Velocidex/ordereddict"

	"github.com/satkerboard/ikpagrid/internal/table"
)

func init() {
	Register(&JSONLoader{})
}

// JSONLoader reads an array of objects. Key order within each object is
// preserved; the header is the union of keys in first-seen order.
type JSONLoader struct{}

// Compile-time interface check.
var _ Loader = (*JSONLoader)(nil)

// Name returns the loader name.
func (l *JSONLoader) Name() string { return "json" }

// Extensions returns the handled extensions.
func (l *JSONLoader) Extensions() []string { return []string{".json"} }

// Load reads the file at path as a single table named after the file.
func (l *JSONLoader) Load(ctx context.Context, path string, opts Options) ([]*table.Table, error) {
	data, err := opts.fs().ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse json: expected an array of objects: %w", err)
	}

	records := make([]*ordereddict.Dict, 0, len(raw))
	for i, msg := range raw {
		rec := ordereddict.NewDict()
		if err := rec.UnmarshalJSON(msg); err != nil {
			return nil, fmt.Errorf("parse json: record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	t := table.FromRecords(stem(path), path, records)
	if len(t.Columns) == 0 {
		return nil, ErrNoHeader
	}
	for _, row := range t.Rows {
		for i, v := range row {
			row[i] = normalize(v)
		}
	}
	return []*table.Table{t}, nil
}

// normalize turns decoded JSON numbers into int64 or float64.
func normalize(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	case float64:
		if n == float64(int64(n)) {
			return int64(n)
		}
		return n
	}
	return v
}
