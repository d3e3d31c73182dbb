package schema

import (
	"fmt"
	"iter"
	"slices"
)

// Field declares one named, typed slot of a Schema.
type Field struct {
	Name string
	Type Kind
}

// F is shorthand for Field{Name: name, Type: k}.
func F(name string, k Kind) Field {
	return Field{Name: name, Type: k}
}

// Schema is an immutable, ordered declaration of field names and kinds.
// A Schema is safe for concurrent use and may be shared by any number of records.
type Schema struct {
	fields []Field
	index  map[string]int
}

// New validates the declarations and builds a Schema preserving their order.
func New(fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, &SchemaError{Reason: ReasonEmpty}
	}

	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			return nil, &SchemaError{Reason: ReasonEmptyName}
		}
		if !f.Type.Valid() {
			return nil, &SchemaError{Reason: ReasonUnsupportedType, Field: f.Name, Type: f.Type.String()}
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, &SchemaError{Reason: ReasonDuplicateField, Field: f.Name}
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustNew is like New but panics on error. Intended for package-level schemas.
func MustNew(fields ...Field) *Schema {
	s, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseTypeMap converts a map of field names to type strings into a Schema.
// Go maps are unordered, so fields are declared in lexical order.
// Example: {"api_key": "string", "retries": "integer"}
func ParseTypeMap(typeMap map[string]string) (*Schema, error) {
	names := make([]string, 0, len(typeMap))
	for name := range typeMap {
		names = append(names, name)
	}
	slices.Sort(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		f, err := parseField(name, typeMap[name])
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return New(fields...)
}

func parseField(name, typeStr string) (Field, error) {
	k, err := ParseKind(typeStr)
	if err != nil {
		return Field{}, &SchemaError{Reason: ReasonUnsupportedType, Field: name, Type: typeStr}
	}
	return Field{Name: name, Type: k}, nil
}

// HasField reports whether name is declared.
func (s *Schema) HasField(name string) bool {
	_, ok := s.index[name]
	return ok
}

// TypeOf returns the declared kind of name.
func (s *Schema) TypeOf(name string) (Kind, error) {
	i, ok := s.index[name]
	if !ok {
		return Invalid, &UndefinedFieldError{Field: name}
	}
	return s.fields[i].Type, nil
}

// Fields returns the field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// All yields every declaration in order.
func (s *Schema) All() iter.Seq2[string, Kind] {
	return func(yield func(string, Kind) bool) {
		for _, f := range s.fields {
			if !yield(f.Name, f.Type) {
				return
			}
		}
	}
}

// Check verifies that value may be stored in field name.
func (s *Schema) Check(name string, value any) error {
	want, err := s.TypeOf(name)
	if err != nil {
		return err
	}
	if got := KindOf(value); got != want {
		return &TypeMismatchError{Field: name, Expected: want, Actual: got, Value: value}
	}
	return nil
}

func (s *Schema) String() string {
	return fmt.Sprintf("schema%v", s.fields)
}
