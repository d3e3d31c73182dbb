package schema

import "slices"

// Validate checks data against the schema without building a record.
// Every mismatching field and every key the schema does not declare is reported
// in a single AggregateError. Missing fields are not an error: records fill them
// with default values.
func Validate(s *Schema, data map[string]any) error {
	var errs []error

	// Validate each declared field in order
	for name := range s.All() {
		value, exists := data[name]
		if !exists {
			continue
		}
		if err := s.Check(name, value); err != nil {
			errs = append(errs, err)
		}
	}

	for _, name := range UnknownFields(s, data) {
		errs = append(errs, &UndefinedFieldError{Field: name})
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// UnknownFields returns the keys of data the schema does not declare, sorted.
func UnknownFields(s *Schema, data map[string]any) []string {
	var unknown []string
	for key := range data {
		if !s.HasField(key) {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	return unknown
}
