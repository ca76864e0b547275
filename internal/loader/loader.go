// Copyright 2026 The ikpagrid Authors
// SPDX-License-Identifier: MIT

// Package loader defines the Loader interface and a registry of input
// formats keyed by file extension.
package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/satkerboard/ikpagrid/internal/table"
	"github.com/satkerboard/ikpagrid/internal/testable"
)

// Sentinel errors returned by loaders.
var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrNoHeader          = errors.New("no header row")
	ErrNoSheet           = errors.New("sheet not found")
)

// Options controls how an input file is read.
type Options struct {
	// Sheet restricts workbook loaders to one sheet. Empty loads every sheet.
	Sheet string

	// FS is the file system to read from. Nil means testable.DefaultFS.
	FS testable.FileSystem
}

func (o Options) fs() testable.FileSystem {
	if o.FS == nil {
		return testable.DefaultFS
	}
	return o.FS
}

// Loader reads one input file into one or more tables.
type Loader interface {
	// Name returns the unique name of this loader (e.g., "xlsx", "csv").
	Name() string

	// Extensions returns the lower-case file extensions handled, with dot.
	Extensions() []string

	// Load reads path and returns its tables in input order.
	Load(ctx context.Context, path string, opts Options) ([]*table.Table, error)
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Loader)
)

// Register adds a loader to the global registry.
// It panics if a loader with the same name is already registered.
func Register(l Loader) {
	mu.Lock()
	defer mu.Unlock()
	name := l.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("loader already registered: %s", name))
	}
	registry[name] = l
}

// Get returns the loader with the given name, or nil if not found.
func Get(name string) Loader {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered loaders, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForPath returns the loader handling path's extension.
func ForPath(path string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mu.RLock()
	defer mu.RUnlock()
	for _, l := range registry {
		for _, e := range l.Extensions() {
			if e == ext {
				return l, nil
			}
		}
	}
	return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
}

// Load reads path with the loader registered for its extension.
func Load(ctx context.Context, path string, opts Options) ([]*table.Table, error) {
	l, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	tables, err := l.Load(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tables, nil
}

// stem returns the base file name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fromGrid builds a table from raw string rows: the first non-empty row is
// the header, blank rows are skipped and cells are coerced with parse.
func fromGrid(name, source string, grid [][]string, parse func(string) any) (*table.Table, error) {
	start := -1
	for i, r := range grid {
		if !blank(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoHeader)
	}

	header := grid[start]
	for len(header) > 0 && strings.TrimSpace(header[len(header)-1]) == "" {
		header = header[:len(header)-1]
	}
	t := &table.Table{Name: name, Source: source, Columns: make([]string, len(header))}
	for i, h := range header {
		t.Columns[i] = strings.TrimSpace(h)
	}

	for _, r := range grid[start+1:] {
		if blank(r) {
			continue
		}
		row := make(table.Row, len(t.Columns))
		for i := range row {
			if i < len(r) {
				row[i] = parse(r[i])
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func blank(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// resetForTesting clears the registry and returns a func restoring the
// previous one. Only for use in tests.
func resetForTesting() (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	saved := registry
	registry = make(map[string]Loader)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		registry = saved
	}
}
