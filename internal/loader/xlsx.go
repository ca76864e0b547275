package loader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/satkerboard/ikpagrid/internal/table"
)

func init() {
	Register(&XLSXLoader{})
}

// XLSXLoader reads Excel workbooks. Every sheet with a header row becomes a
// table named after the sheet.
type XLSXLoader struct{}

// Compile-time interface check.
var _ Loader = (*XLSXLoader)(nil)

// Name returns the loader name.
func (l *XLSXLoader) Name() string { return "xlsx" }

// Extensions returns the handled extensions.
func (l *XLSXLoader) Extensions() []string { return []string{".xlsx", ".xlsm"} }

// Load reads the workbook at path.
func (l *XLSXLoader) Load(ctx context.Context, path string, opts Options) ([]*table.Table, error) {
	r, err := opts.fs().Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // read-only

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only

	sheets := f.GetSheetList()
	if opts.Sheet != "" {
		if idx, _ := f.GetSheetIndex(opts.Sheet); idx < 0 {
			return nil, fmt.Errorf("%w: %q (available: %v)", ErrNoSheet, opts.Sheet, sheets)
		}
		sheets = []string{opts.Sheet}
	}

	var tables []*table.Table
	for _, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		t, err := fromGrid(sheet, path, rows, table.ParseValue)
		if err != nil {
			if opts.Sheet == "" {
				slog.Debug("skipping empty sheet", "file", path, "sheet", sheet)
				continue
			}
			return nil, err
		}
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		return nil, ErrNoHeader
	}
	return tables, nil
}
