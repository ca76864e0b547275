// Package output defines the Formatter interface for writing rendered IKPA
// tables in various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Formatter writes a Document to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "html", "json", "markdown").
	Name() string

	// Format writes the document to w.
	Format(doc *Document, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resetFmtForTesting clears the formatter registry and returns a func
// restoring it. Only for use in tests.
func resetFmtForTesting() (restore func()) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	saved := fmtRegistry
	fmtRegistry = make(map[string]Formatter)
	return func() {
		fmtMu.Lock()
		defer fmtMu.Unlock()
		fmtRegistry = saved
	}
}

// formatNames returns a comma-separated sorted list of registered format
// names. The caller holds fmtMu.
func formatNames() string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
