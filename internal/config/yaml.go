package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/satkerboard/ikpagrid/internal/testable"
)

// FS is the file system config files are read from and written to.
var FS testable.FileSystem = testable.DefaultFS

// Load reads the .ikpagrid.yaml file from the given directory.
// If the file does not exist, it returns a zero-value Config and nil error.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads the config file at path. A missing file yields a zero Config.
func LoadFile(path string) (*Config, error) {
	data, err := FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadRaw reads the config file at path as a generic map, for edits that
// must not drop keys. A missing file yields an empty map.
func LoadRaw(path string) (map[string]any, error) {
	data, err := FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]any), nil
		}
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// WriteFile writes data as YAML to path, creating parent directories.
func WriteFile(path string, data map[string]any) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := FS.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return FS.WriteFile(path, out, 0o600)
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := FS.Stat(path)
	return err == nil
}
