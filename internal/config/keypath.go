package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetValue retrieves a value from a Config by dot-notation key path.
// It returns scalar values as-is, and maps for intermediate nodes.
func GetValue(cfg *Config, keyPath string) (any, error) {
	m, err := configToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return navigateMap(m, keyPath)
}

// SetValue sets a value in a raw YAML map by dot-notation key path,
// creating intermediate maps as needed.
func SetValue(data map[string]any, keyPath string, rawValue string) error {
	parts := strings.Split(keyPath, ".")
	if keyPath == "" {
		return fmt.Errorf("empty key path")
	}

	current := data
	for _, part := range parts[:len(parts)-1] {
		child, ok := current[part]
		if !ok {
			next := make(map[string]any)
			current[part] = next
			current = next
			continue
		}
		next, ok := child.(map[string]any)
		if !ok {
			return fmt.Errorf("key %q is not a map", part)
		}
		current = next
	}

	current[parts[len(parts)-1]] = coerceValue(rawValue)
	return nil
}

// DeleteValue removes keyPath from a raw YAML map, dropping sections left
// empty. It reports whether the key was set.
func DeleteValue(data map[string]any, keyPath string) bool {
	parts := strings.Split(keyPath, ".")
	head := parts[0]
	if len(parts) == 1 {
		if _, ok := data[head]; !ok {
			return false
		}
		delete(data, head)
		return true
	}
	child, ok := data[head].(map[string]any)
	if !ok || !DeleteValue(child, strings.Join(parts[1:], ".")) {
		return false
	}
	if len(child) == 0 {
		delete(data, head)
	}
	return true
}

// FlattenMap recursively flattens a nested map to dot-notation keys.
func FlattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			for sk, sv := range FlattenMap(sub, key) {
				result[sk] = sv
			}
		} else {
			result[key] = v
		}
	}
	return result
}

// ValidateKeyPath checks that a dot-notation key path names a Config field,
// walking nested sections by their yaml struct tags.
func ValidateKeyPath(keyPath string) error {
	if keyPath == "" {
		return fmt.Errorf("empty key path")
	}
	t := reflect.TypeOf(Config{})
	parts := strings.Split(keyPath, ".")
	for i, part := range parts {
		fields := yamlFields(t)
		ft, ok := fields[part]
		if !ok {
			where := "top-level keys"
			if i > 0 {
				where = "keys under " + strings.Join(parts[:i], ".")
			}
			return fmt.Errorf("unknown key %q; valid %s: %s", part, where, sortedKeys(fields))
		}
		if ft.Kind() != reflect.Struct {
			if i < len(parts)-1 {
				return fmt.Errorf("key %q is a scalar; cannot use sub-keys", strings.Join(parts[:i+1], "."))
			}
			return nil
		}
		t = ft
	}
	return fmt.Errorf("key %q is a section; name one of: %s", keyPath, sortedKeys(yamlFields(t)))
}

// configToMap marshals a Config to a map via YAML round-trip.
func configToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// ToFlatMap converts a Config to a flat dot-notation map, omitting zero values.
func ToFlatMap(cfg *Config) (map[string]any, error) {
	m, err := configToMap(cfg)
	if err != nil {
		return nil, err
	}
	return FlattenMap(m, ""), nil
}

// navigateMap traverses a nested map using a dot-notation key path.
func navigateMap(m map[string]any, keyPath string) (any, error) {
	parts := strings.Split(keyPath, ".")
	var current any = m
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q: parent is not a map", part)
		}
		val, exists := cm[part]
		if !exists {
			return nil, fmt.Errorf("key %q not found", keyPath)
		}
		current = val
	}
	return current, nil
}

// coerceValue parses a string into bool, int, float64, or keeps it as string.
func coerceValue(s string) any {
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		// Only use float if it has a decimal point (avoid converting "3" to 3.0).
		if strings.Contains(s, ".") {
			return f
		}
	}
	return s
}

// yamlFields maps yaml tag names of a struct type to their field types.
func yamlFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type)
	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			fields[name] = f.Type
		}
	}
	return fields
}

// sortedKeys returns a comma-separated sorted list of map keys.
func sortedKeys(m map[string]reflect.Type) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
