package catalog

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/satkerboard/ikpagrid/internal/testable"
)

// overrideFile is the on-disk shape of a catalog override, in YAML or TOML.
//
//	fallback_text: "Belum ada penjelasan."
//	entries:
//	  "Revisi DIPA":
//	    title: "Revisi DIPA"
//	    html: "<p>...</p>"
type overrideFile struct {
	Fallback string                   `yaml:"fallback_text" toml:"fallback_text"`
	Entries  map[string]overrideEntry `yaml:"entries" toml:"entries"`
}

type overrideEntry struct {
	Title string `yaml:"title" toml:"title"`
	HTML  string `yaml:"html" toml:"html"`
}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// sanitizer returns the policy applied to fragments read from files.
func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").OnElements("span", "div", "table", "p")
		policy = p
	})
	return policy
}

// Load builds a catalog from the built-in entries overlaid with the file at
// path. An empty path returns Default().
func Load(path string) (*Catalog, error) {
	return LoadFS(testable.DefaultFS, path)
}

// LoadFS is Load with an injectable file system.
func LoadFS(fsys testable.FileSystem, path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var f overrideFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		for _, k := range md.Undecoded() {
			slog.Warn("ignoring unknown catalog field", "file", path, "field", k.String())
		}
	default:
		return nil, fmt.Errorf("catalog %s: unsupported extension (want .yaml, .yml or .toml)", path)
	}

	return overlay(Default(), f)
}

// overlay returns a new catalog with f's entries replacing base's. Unknown
// keys are an error; empty fields keep the base value.
func overlay(base *Catalog, f overrideFile) (*Catalog, error) {
	entries := make([]Entry, 0, base.Len())
	for _, k := range base.Keys() {
		e, _ := base.Lookup(k)
		entries = append(entries, e)
	}

	var unknown []string
	for name, oe := range f.Entries {
		k, err := ParseKey(name)
		if err != nil || k == Unresolved {
			unknown = append(unknown, name)
			continue
		}
		idx := -1
		for i := range entries {
			if entries[i].Key == k {
				idx = i
				break
			}
		}
		if idx < 0 {
			entries = append(entries, Entry{Key: k})
			idx = len(entries) - 1
		}
		if oe.Title != "" {
			entries[idx].Title = oe.Title
		}
		if oe.HTML != "" {
			entries[idx].HTML = sanitizer().Sanitize(oe.HTML)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("catalog: unknown keys: %s", strings.Join(unknown, ", "))
	}

	fallback := base.fallback
	if f.Fallback != "" {
		fallback = f.Fallback
	}
	return New(entries, fallback), nil
}

// WithFallback returns a copy of c using fallback as the miss text. c is
// left untouched.
func (c *Catalog) WithFallback(fallback string) *Catalog {
	if fallback == "" || fallback == c.fallback {
		return c
	}
	entries := make([]Entry, 0, len(c.entries))
	for _, k := range c.Keys() {
		entries = append(entries, c.entries[k])
	}
	return New(entries, fallback)
}
