// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// listKeys are set from a comma-separated value.
var listKeys = map[string]bool{"cors_origins": true}

// GetValue retrieves a value from a Config by key. Lists are returned as
// []any, scalars as-is.
func GetValue(cfg *Config, key string) (any, error) {
	m, err := ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	if err := ValidateKeyPath(key); err != nil {
		return nil, err
	}
	val, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("key %q not set", key)
	}
	return val, nil
}

// SetValue sets key in a raw config map, coercing rawValue to the key's type.
func SetValue(data map[string]any, key string, rawValue string) error {
	if err := ValidateKeyPath(key); err != nil {
		return err
	}
	if listKeys[key] {
		var items []any
		for _, item := range strings.Split(rawValue, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		data[key] = items
		return nil
	}
	data[key] = coerceValue(rawValue)
	return nil
}

// ToMap converts a Config to a map via YAML round-trip, omitting zero values.
func ToMap(cfg *Config) (map[string]any, error) {
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

// ValidateKeyPath checks that key names a Config field. Config keys are
// flat, so sub-keys are rejected.
func ValidateKeyPath(key string) error {
	if key == "" {
		return fmt.Errorf("empty key path")
	}
	keys := Keys()
	first, _, nested := strings.Cut(key, ".")
	if !slices.Contains(keys, first) {
		return fmt.Errorf("unknown key %q; valid keys: %s", first, strings.Join(keys, ", "))
	}
	if nested {
		return fmt.Errorf("key %q is a scalar; cannot use sub-keys", first)
	}
	return nil
}

// Keys returns the config keys in sorted order, from the yaml struct tags.
func Keys() []string {
	t := reflect.TypeOf(Config{})
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys
}

// coerceValue parses a string into bool, int, float64, or keeps it as string.
func coerceValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// Only use float if it has a decimal point (avoid converting "3" to 3.0).
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
