// Package docio loads a pipeline configuration document from disk into the
// generic map[string]any tree internal/config.Parse consumes. The parser
// itself stays format-agnostic; concrete serialization lives entirely
// here, at the boundary.
package docio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads path and decodes it into a document tree, choosing the codec
// by file extension (.json, or .yaml/.yml).
func Load(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("docio: reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(raw)
	default:
		return decodeJSON(raw)
	}
}

func decodeJSON(raw []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("docio: decoding JSON: %w", err)
	}
	return doc, nil
}

func decodeYAML(raw []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("docio: decoding YAML: %w", err)
	}
	return normalizeYAML(doc).(map[string]any), nil
}

// normalizeYAML recursively converts yaml.v3's map[string]interface{} (it
// already uses string keys, unlike v2's map[interface{}]interface{}) plus
// any nested []interface{} into the exact shapes internal/config.Parse's
// coercion helpers expect.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	default:
		return v
	}
}
