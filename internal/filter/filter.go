// Package filter selects table rows with expr-lang expressions such as
//
//	row["Capaian Output"] >= 90 && row["Kode Satker"] startsWith "01"
//
// Rows are exposed as the map variable row, keyed by column name.
package filter

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/satkerboard/ikpagrid/internal/table"
)

// Filter is a compiled row predicate. It is safe for concurrent use.
type Filter struct {
	source  string
	program *vm.Program
}

var cache sync.Map // expression string → *Filter

func env(row map[string]any) map[string]any {
	return map[string]any{"row": row, "index": 0}
}

// Compile parses expression. Compiled filters are cached by source text.
// An empty expression yields a nil Filter, which keeps every row.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil
	}
	if cached, ok := cache.Load(expression); ok {
		return cached.(*Filter), nil
	}
	program, err := expr.Compile(expression,
		expr.Env(env(map[string]any{})),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expression, err)
	}
	f := &Filter{source: expression, program: program}
	cache.Store(expression, f)
	return f, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Match evaluates the filter against one record. index is the 0-based
// position of the row in its table.
func (f *Filter) Match(record map[string]any, index int) (bool, error) {
	if f == nil {
		return true, nil
	}
	vars := env(record)
	vars["index"] = index
	out, err := expr.Run(f.program, vars)
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.source, err)
	}
	b, _ := out.(bool)
	return b, nil
}

// Apply returns a copy of t holding only the matching rows. The input table
// is not modified; the header is shared. A row the filter cannot evaluate,
// typically a blank cell compared with a number, does not match.
func (f *Filter) Apply(t *table.Table) *table.Table {
	if f == nil {
		return t
	}
	out := &table.Table{Name: t.Name, Source: t.Source, Columns: t.Columns}
	skipped := 0
	for i, row := range t.Rows {
		ok, err := f.Match(t.Record(i), i)
		if err != nil {
			slog.Debug("filter skipped row", "table", t.Name, "row", i+1, "error", err)
			skipped++
			continue
		}
		if ok {
			out.Rows = append(out.Rows, row)
		}
	}
	if skipped > 0 {
		slog.Info("filter could not evaluate rows", "table", t.Name, "where", f.source, "rows", skipped)
	}
	return out
}
