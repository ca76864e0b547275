// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes ikpagrid's render and explanation operations as tools.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/satkerboard/ikpagrid/internal/loader"
)

// ResolveInput resolves a table path sent by a client to an absolute,
// symlink-free path. The path must name a regular file with a supported
// extension.
func ResolveInput(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path is required")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}
	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", path)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%q is not a regular file", path)
	}
	if _, err := loader.ForPath(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}
