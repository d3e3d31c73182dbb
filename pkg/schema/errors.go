package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchema is matched by every SchemaError.
	ErrSchema = errors.New("invalid schema")
	// ErrUndefinedField is matched by every UndefinedFieldError.
	ErrUndefinedField = errors.New("undefined field")
	// ErrTypeMismatch is matched by every TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Reasons carried by SchemaError.
const (
	ReasonEmpty           = "empty"
	ReasonUnsupportedType = "unsupported-type"
	ReasonDuplicateField  = "duplicate-field"
	ReasonEmptyName       = "empty-name"
)

// SchemaError reports a schema rejected at construction.
type SchemaError struct {
	Reason string
	Field  string // empty for ReasonEmpty
	Type   string // offending type, for ReasonUnsupportedType
}

func (e *SchemaError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "schema: no fields declared"
	case ReasonUnsupportedType:
		return fmt.Sprintf("schema: field %q: unsupported type %q", e.Field, e.Type)
	case ReasonDuplicateField:
		return fmt.Sprintf("schema: field %q declared more than once", e.Field)
	default:
		return fmt.Sprintf("schema: %s", e.Reason)
	}
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// UndefinedFieldError reports access to a field the schema does not declare.
type UndefinedFieldError struct {
	Field string
}

func (e *UndefinedFieldError) Error() string {
	return fmt.Sprintf("field %q is not defined in the meta", e.Field)
}

func (e *UndefinedFieldError) Is(target error) bool { return target == ErrUndefinedField }

// TypeMismatchError reports a value whose kind differs from the declared one.
type TypeMismatchError struct {
	Field    string
	Expected Kind
	Actual   Kind
	Value    any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %s (%T)", e.Field, e.Expected, e.Actual, e.Value)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// UnsupportedDefaultError is returned by DefaultValue for a kind outside the seven.
type UnsupportedDefaultError struct {
	Type Kind
}

func (e *UnsupportedDefaultError) Error() string {
	return fmt.Sprintf("no default value for type %s", e.Type)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
