package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/metarecord/pkg/schema"
)

// Value returns the value of name as T.
// It fails with UndefinedFieldError for unknown fields and TypeMismatchError when
// the stored value is not a T.
func Value[T any](r *Record, name string) (T, error) {
	var zero T
	v, err := r.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		expected, _ := r.schema.TypeOf(name)
		return zero, &schema.TypeMismatchError{Field: name, Expected: expected, Actual: schema.KindOf(v), Value: v}
	}
	return typed, nil
}

// Decode copies the record's values into out, which must be a pointer to a struct
// or map. Struct fields are matched by their `mapstructure` tag, or by name.
func Decode(r *Record, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: false,
	})
	if err != nil {
		return fmt.Errorf("record: decode: %w", err)
	}
	if err := dec.Decode(r.Export()); err != nil {
		return fmt.Errorf("record: decode: %w", err)
	}
	return nil
}

// MarshalJSON writes the record as a JSON object with keys in schema order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, value := range r.Values() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits the record as a mapping with keys in schema order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for name, value := range r.Values() {
		var val yaml.Node
		if err := val.Encode(value); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&val,
		)
	}
	return node, nil
}
