package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/metarecord/pkg/schema"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format identifies a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// LoadSchema reads a schema document (a mapping of field names to type names).
// Key order in the file becomes declaration order.
func LoadSchema(path string) (*schema.Schema, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var s schema.Schema
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &s)
	default:
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Len() == 0 {
		// Empty documents never reach the schema decoder.
		return nil, fmt.Errorf("%s: %w", path, &schema.SchemaError{Reason: schema.ReasonEmpty})
	}
	return &s, nil
}

// LoadData reads a data document holding either one mapping or a list of mappings.
func LoadData(path string) ([]map[string]any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	items, err := DecodeData(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// DecodeData decodes one mapping or a list of mappings from r.
// JSON numbers without a fraction or exponent become int64, all others float64,
// so that integer and float fields can be told apart.
// YAML mappings with non-string keys have their keys formatted as strings, as
// JSON object keys would be.
func DecodeData(r io.Reader, format Format) ([]map[string]any, error) {
	var doc any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
		normalized, err := normalizeNumbers(doc)
		if err != nil {
			return nil, err
		}
		doc = normalized
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
		doc = normalizeKeys(doc)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	switch v := doc.(type) {
	case map[string]any:
		return []map[string]any{v}, nil
	case []any:
		items := make([]map[string]any, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("item %d: expected mapping, got %T", i, item)
			}
			items = append(items, m)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("expected mapping or list of mappings, got %T", doc)
	}
}

func normalizeNumbers(v any) (any, error) {
	switch t := v.(type) {
	case json.Number:
		if !strings.ContainsAny(t.String(), ".eE") {
			if i, err := t.Int64(); err == nil {
				return i, nil
			}
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", t, err)
		}
		return f, nil
	case map[string]any:
		for k, item := range t {
			n, err := normalizeNumbers(item)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case []any:
		for i, item := range t {
			n, err := normalizeNumbers(item)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}

// normalizeKeys converts the map[any]any values yaml.v3 produces for mappings
// with non-string keys into map[string]any, at any depth.
func normalizeKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, item := range t {
			m[fmt.Sprint(k)] = normalizeKeys(item)
		}
		return m
	case map[string]any:
		for k, item := range t {
			t[k] = normalizeKeys(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = normalizeKeys(item)
		}
		return t
	default:
		return v
	}
}
