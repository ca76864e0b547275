// Copyright 2026 The ikpagrid Authors
// SPDX-License-Identifier: MIT

// Package redact strips the local user's home directory from strings before
// they leave the process in error messages or MCP tool results.
package redact

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	cachedHome string
	cacheOnce  sync.Once
)

func loadHome() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	home = filepath.Clean(home)
	// Too short to replace without mangling unrelated text.
	if len(home) < 4 {
		return
	}
	cachedHome = home
}

// resetCache resets the cached home directory. Used by tests that change
// $HOME between calls.
func resetCache() {
	cachedHome = ""
	cacheOnce = sync.Once{}
}

// ResetForTest resets the cache so tests in other packages can verify
// redaction after setting $HOME with t.Setenv.
func ResetForTest() { resetCache() }

// String replaces every occurrence of the home directory followed by a path
// separator, or at the end of s, with "~". The home directory is looked up
// once per process.
func String(s string) string {
	cacheOnce.Do(loadHome)
	if cachedHome == "" || !strings.Contains(s, cachedHome) {
		return s
	}

	var b strings.Builder
	rest := s
	for {
		i := strings.Index(rest, cachedHome)
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := i + len(cachedHome)
		b.WriteString(rest[:i])
		if end == len(rest) || rest[end] == filepath.Separator {
			b.WriteString("~")
		} else {
			b.WriteString(cachedHome)
		}
		rest = rest[end:]
	}
}

// Error returns err with its message passed through String. The original
// error is not wrapped.
func Error(err error) error {
	if err == nil {
		return nil
	}
	return redacted{msg: String(err.Error())}
}

type redacted struct{ msg string }

func (e redacted) Error() string { return e.msg }
