// Package keytree converts translation documents between nested JSON/YAML
// trees and flat key → text maps.
package keytree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a document serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// ErrNotObject is returned when a document root is not an object.
var ErrNotObject = errors.New("document root must be an object")

// Decode parses a document into a tree of maps, slices and scalars.
func Decode(data []byte, format Format) (map[string]any, error) {
	var root any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&root); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	switch obj := root.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return obj, nil
	case map[any]any:
		return stringKeys(obj), nil
	}
	return nil, ErrNotObject
}

// stringKeys converts a YAML mapping with non-string keys, e.g. "404:" or
// plural counts, into a string-keyed object.
func stringKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[fmt.Sprint(k)] = v
	}
	return out
}

// Encode serializes a tree. JSON output is indented with two spaces.
func Encode(tree map[string]any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tree); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// Flatten joins nested object keys with sep. Array elements use their
// index as the key segment. Null values are dropped; other scalars are
// rendered as text.
func Flatten(tree map[string]any, sep string) map[string]string {
	out := make(map[string]string)
	flatten(out, "", tree, sep)
	return out
}

func flatten(out map[string]string, prefix string, v any, sep string) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + sep + k
	}

	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			flatten(out, join(k), child, sep)
		}
	case map[any]any:
		for k, child := range node {
			flatten(out, join(fmt.Sprint(k)), child, sep)
		}
	case []any:
		for i, child := range node {
			flatten(out, join(strconv.Itoa(i)), child, sep)
		}
	case nil:
	case string:
		out[prefix] = node
	default:
		out[prefix] = fmt.Sprint(node)
	}
}

// Nest splits keys on sep and builds the nested tree. A key that is both a
// leaf and a prefix of another key cannot be nested and yields an error.
func Nest(flat map[string]string, sep string) (map[string]any, error) {
	root := make(map[string]any)
	for _, key := range SortedKeys(flat) {
		parts := strings.Split(key, sep)
		node := root
		for i, part := range parts[:len(parts)-1] {
			child, exists := node[part]
			if !exists {
				next := make(map[string]any)
				node[part] = next
				node = next
				continue
			}
			next, ok := child.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("key %q conflicts with %q", key, strings.Join(parts[:i+1], sep))
			}
			node = next
		}

		leaf := parts[len(parts)-1]
		if _, exists := node[leaf]; exists {
			return nil, fmt.Errorf("key %q conflicts with a nested key", key)
		}
		node[leaf] = flat[key]
	}
	return root, nil
}

// SortedKeys returns the keys of a flat map in lexical order.
func SortedKeys(flat map[string]string) []string {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
