package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON serializes the schema as an object of field names to type names,
// in declaration order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(`"` + f.Type.String() + `"`)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON deserializes the schema from an object of field names to type
// names. Key order in the document becomes declaration order.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("schema: expected object, got %v", tok)
	}

	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		typeStr, ok := valTok.(string)
		if !ok {
			return fmt.Errorf("field %s: expected string type, got %T", name, valTok)
		}

		f, err := parseField(name, typeStr)
		if err != nil {
			return err
		}
		fields = append(fields, f)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	parsed, err := New(fields...)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

// MarshalYAML emits the schema as a mapping in declaration order.
func (s *Schema) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range s.fields {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Type.String()},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping of field names to type names, keeping
// document order as declaration order.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("schema: line %d: expected mapping", node.Line)
	}

	fields := make([]Field, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("field %s: line %d: expected type name", key.Value, val.Line)
		}
		f, err := parseField(key.Value, val.Value)
		if err != nil {
			return err
		}
		fields = append(fields, f)
	}

	parsed, err := New(fields...)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}
