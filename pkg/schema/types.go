package schema

import (
	"fmt"
	"reflect"
)

// Kind is the runtime type tag of a field.
// Only the seven kinds declared below are valid; the zero value is Invalid.
type Kind uint8

const (
	Invalid Kind = iota
	Integer
	Float
	Boolean
	String
	List
	Object
	Null
)

var kindNames = [...]string{
	Invalid: "invalid",
	Integer: "integer",
	Float:   "float",
	Boolean: "boolean",
	String:  "string",
	List:    "list",
	Object:  "object",
	Null:    "null",
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the seven supported kinds.
func (k Kind) Valid() bool {
	return k >= Integer && k <= Null
}

// Validate checks if a value is of this kind.
func (k Kind) Validate(value any) error {
	if actual := KindOf(value); actual != k {
		return fmt.Errorf("expected %s, got %s (%T)", k, actual, value)
	}
	return nil
}

// KindOf classifies a Go value into a Kind.
// Named types are classified by their underlying kind, so time.Duration is an
// integer and json.Number a string. A typed nil pointer is null.
// Element types of lists and the shape of objects are not inspected.
// Values that fit none of the kinds (funcs, channels, complex numbers) yield Invalid.
func KindOf(value any) Kind {
	switch value.(type) {
	case nil:
		return Null
	case bool:
		return Boolean
	case string:
		return String
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Integer
	case float32, float64:
		return Float
	case []any, []string, []int, []float64:
		return List
	case map[string]any:
		return Object
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.String:
		return String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Integer
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Slice, reflect.Array:
		return List
	case reflect.Map, reflect.Struct:
		return Object
	case reflect.Pointer:
		if rv.IsNil() {
			return Null
		}
		if rv.Type().Elem().Kind() == reflect.Struct {
			return Object
		}
	}
	return Invalid
}

// ParseKind converts a type name to a Kind.
// Besides the canonical names it accepts the aliases int, bool, double, array and map.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "integer", "int":
		return Integer, nil
	case "float", "double":
		return Float, nil
	case "boolean", "bool":
		return Boolean, nil
	case "string":
		return String, nil
	case "list", "array":
		return List, nil
	case "object", "map":
		return Object, nil
	case "null":
		return Null, nil
	default:
		return Invalid, fmt.Errorf("unsupported type: %s", name)
	}
}

// MarshalText encodes the kind as its canonical name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unsupported type: %s", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from a type name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// DefaultValue returns the value a field of the given kind holds when no input provides one.
// Lists and objects are freshly allocated on every call.
func DefaultValue(k Kind) (any, error) {
	switch k {
	case String:
		return "", nil
	case Integer:
		return 0, nil
	case Float:
		return 0.0, nil
	case Boolean:
		return false, nil
	case List:
		return []any{}, nil
	case Object:
		return map[string]any{}, nil
	case Null:
		return nil, nil
	default:
		return nil, &UnsupportedDefaultError{Type: k}
	}
}
