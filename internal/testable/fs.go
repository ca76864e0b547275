// Package testable provides interfaces for abstracting OS-level operations,
// enabling mock injection in tests without modifying production behavior.
package testable

import (
	"io"
	"os"
	"path/filepath"
)

// FileSystem abstracts the file operations ikpagrid performs: reading input
// tables and catalogs, and writing rendered output and config files.
// The production implementation (OsFileSystem) delegates to the standard library.
type FileSystem interface {
	// Abs returns an absolute representation of path.
	Abs(path string) (string, error)

	// Stat returns a FileInfo describing the named file.
	Stat(name string) (os.FileInfo, error)

	// Open opens the named file for reading.
	Open(name string) (io.ReadCloser, error)

	// Create creates or truncates the named file.
	Create(name string) (io.WriteCloser, error)

	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	MkdirAll(path string, perm os.FileMode) error
}

// OsFileSystem is the production implementation of FileSystem.
type OsFileSystem struct{}

// Abs wraps filepath.Abs.
func (OsFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Stat wraps os.Stat.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Open wraps os.Open.
func (OsFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // caller controls path
}

// Create wraps os.Create.
func (OsFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name) //nolint:gosec // caller controls path
}

// ReadFile wraps os.ReadFile.
func (OsFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // caller controls path
}

// WriteFile wraps os.WriteFile.
func (OsFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm) //nolint:gosec // caller controls path and perms
}

// MkdirAll wraps os.MkdirAll.
func (OsFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// DefaultFS is the production FileSystem used as the default throughout
// the application.
var DefaultFS FileSystem = OsFileSystem{}
